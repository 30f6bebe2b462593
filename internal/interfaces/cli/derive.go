package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// DeriveResult holds the physical properties computed for a species type.
type DeriveResult struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Formula  string  `json:"formula"`
	Charge   float64 `json:"charge"`
	MolWt    float64 `json:"mol_wt"`
	Length   int     `json:"length,omitempty"`
	Sequence string  `json:"sequence,omitempty"`
}

func (r *DeriveResult) TableHeaders() []string {
	return []string{"ID", "KIND", "FORMULA", "CHARGE", "MOL WT"}
}

func (r *DeriveResult) TableRows() [][]string {
	return [][]string{{
		r.ID,
		r.Kind,
		r.Formula,
		strconv.FormatFloat(r.Charge, 'g', -1, 64),
		strconv.FormatFloat(r.MolWt, 'g', 6, 64),
	}}
}

func (r *DeriveResult) String() string {
	s := fmt.Sprintf("%s: formula=%s charge=%g mol_wt=%g", r.ID, r.Formula, r.Charge, r.MolWt)
	if r.Length > 0 {
		s += fmt.Sprintf(" length=%d", r.Length)
	}
	if r.Sequence != "" {
		s += "\n" + r.Sequence
	}
	return s
}

// NewDeriveCmd creates the derive command.
func NewDeriveCmd() *cobra.Command {
	var showSequence bool

	cmd := &cobra.Command{
		Use:   "derive <species-type-id>",
		Short: "Derive empirical formula, charge and molecular weight",
		Long:  "Derive the empirical formula, net charge and molecular weight of a species\ntype from its stored properties, structure or sequence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, _, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			st := k.Cell.FindSpeciesType(args[0])
			if st == nil {
				return errors.Newf(errors.ErrCodeResolution, "species type %q is not defined", args[0])
			}

			formula, err := st.EmpiricalFormula()
			if err != nil {
				return err
			}
			charge, err := st.Charge()
			if err != nil {
				return err
			}
			molWt, err := st.MolWt()
			if err != nil {
				return err
			}

			result := &DeriveResult{
				ID:      args[0],
				Kind:    string(st.Kind()),
				Formula: formula.String(),
				Charge:  charge,
				MolWt:   molWt,
			}
			if seqType, ok := st.(interface{ Sequence() (string, error) }); ok {
				sequence, err := seqType.Sequence()
				if err != nil {
					return err
				}
				result.Length = len(sequence)
				if showSequence {
					result.Sequence = sequence
				}
			}
			return PrintResult(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&showSequence, "sequence", false, "include the full sequence in the output")

	return cmd
}
