package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// ValidateResult lists the findings of a knowledge-base consistency check.
type ValidateResult struct {
	KB       string   `json:"kb"`
	Valid    bool     `json:"valid"`
	Findings []string `json:"findings,omitempty"`
}

func (r *ValidateResult) TableHeaders() []string { return []string{"#", "FINDING"} }

func (r *ValidateResult) TableRows() [][]string {
	rows := make([][]string, len(r.Findings))
	for i, f := range r.Findings {
		rows[i] = []string{fmt.Sprintf("%d", i+1), f}
	}
	return rows
}

func (r *ValidateResult) String() string {
	if r.Valid {
		return fmt.Sprintf("%s: valid", r.KB)
	}
	s := fmt.Sprintf("%s: %d finding(s)", r.KB, len(r.Findings))
	for _, f := range r.Findings {
		s += "\n  " + f
	}
	return s
}

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var checkBalance bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the knowledge base for consistency",
		Long:  "Run the consistency checks over the loaded knowledge base: unique ids,\nresolvable references, finite coefficients, locus coordinates and, optionally,\nelemental balance of every reaction.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			k, _, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}

			balance := cliCtx.Config.Validate.CheckBalance
			if cmd.Flags().Changed("check-balance") {
				balance = checkBalance
			}

			validator := &kb.Validator{CheckBalance: balance}
			findings := validator.Run(k)

			result := &ValidateResult{KB: k.ID, Valid: len(findings) == 0}
			for _, f := range findings {
				result.Findings = append(result.Findings, f.Error())
			}
			if err := PrintResult(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return errors.Newf(errors.ErrCodeValidationFailed,
					"knowledge base %q has %d finding(s)", k.ID, len(result.Findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkBalance, "check-balance", false, "verify elemental balance of every reaction")

	return cmd
}
