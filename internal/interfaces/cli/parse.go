package cli

import (
	"github.com/spf13/cobra"

	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
)

// ParseResult is the outcome of parsing a grammar string: the canonical
// serialization and the ids the string resolved to.
type ParseResult struct {
	Input     string   `json:"input"`
	Canonical string   `json:"canonical"`
	Resolved  []string `json:"resolved,omitempty"`
}

func (r *ParseResult) TableHeaders() []string { return []string{"INPUT", "CANONICAL", "RESOLVED"} }

func (r *ParseResult) TableRows() [][]string {
	resolved := ""
	for i, id := range r.Resolved {
		if i > 0 {
			resolved += ", "
		}
		resolved += id
	}
	return [][]string{{r.Input, r.Canonical, resolved}}
}

func (r *ParseResult) String() string { return r.Canonical }

// NewParseCmd creates the parse command group.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse grammar strings against the knowledge base",
		Long:  "Parse a species, participants, subunits, expression or identifiers string\nagainst the loaded knowledge base and print its canonical serialization.",
	}

	cmd.AddCommand(
		newParseSpeciesCmd(),
		newParseParticipantsCmd(),
		newParseSubunitsCmd(),
		newParseExpressionCmd(),
		newParseIdentifiersCmd(),
	)

	return cmd
}

func newParseSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species <text>",
		Short: "Parse a species string such as \"atp[c]\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			species, err := kb.ParseSpecies(args[0], pool)
			if err != nil {
				return err
			}
			return PrintResult(cmd, &ParseResult{
				Input:     args[0],
				Canonical: species.Serialize(),
				Resolved:  []string{species.SpeciesType.Meta().ID, species.Compartment.ID},
			})
		},
	}
}

func newParseParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants <text>",
		Short: "Parse a reaction participants string such as \"[c]: atp + h2o ==> adp + pi\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			participants, err := kb.ParseParticipants(args[0], pool)
			if err != nil {
				return err
			}
			resolved := make([]string, len(participants))
			for i, p := range participants {
				resolved[i] = p.Species.ID()
			}
			return PrintResult(cmd, &ParseResult{
				Input:     args[0],
				Canonical: kb.SerializeParticipants(participants),
				Resolved:  resolved,
			})
		},
	}
}

func newParseSubunitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subunits <text>",
		Short: "Parse a complex subunit composition string such as \"(2) rpoB + rpoZ\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			subunits, err := kb.ParseSubunits(args[0], pool)
			if err != nil {
				return err
			}
			resolved := make([]string, len(subunits))
			for i, s := range subunits {
				resolved[i] = s.SpeciesType.Meta().ID
			}
			return PrintResult(cmd, &ParseResult{
				Input:     args[0],
				Canonical: kb.SerializeSubunits(subunits),
				Resolved:  resolved,
			})
		},
	}
}

func newParseExpressionCmd() *cobra.Command {
	var rateLaw bool

	cmd := &cobra.Command{
		Use:   "expression <text>",
		Short: "Parse an observable or rate law expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			var resolved []string
			var canonical string
			if rateLaw {
				expr, err := kb.ParseRateLawExpression(args[0], pool)
				if err != nil {
					return err
				}
				canonical = expr.Serialize()
				for _, s := range expr.Species {
					resolved = append(resolved, s.ID())
				}
				for _, o := range expr.Observables {
					resolved = append(resolved, o.ID)
				}
				for _, p := range expr.Parameters {
					resolved = append(resolved, p.ID)
				}
			} else {
				expr, err := kb.ParseObservableExpression(args[0], pool)
				if err != nil {
					return err
				}
				canonical = expr.Serialize()
				for _, s := range expr.Species {
					resolved = append(resolved, s.ID())
				}
				for _, o := range expr.Observables {
					resolved = append(resolved, o.ID)
				}
			}
			return PrintResult(cmd, &ParseResult{Input: args[0], Canonical: canonical, Resolved: resolved})
		},
	}

	cmd.Flags().BoolVar(&rateLaw, "rate-law", false, "parse as a rate law expression (allows parameter references)")

	return cmd
}

func newParseIdentifiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identifiers <text>",
		Short: "Parse a database cross-reference list such as \"chebi:CHEBI:15422, kegg:C00002\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := loadKnowledgeBase(cmd)
			if err != nil {
				return err
			}
			identifiers, err := kb.ParseIdentifiers(args[0], pool)
			if err != nil {
				return err
			}
			resolved := make([]string, len(identifiers))
			for i, id := range identifiers {
				resolved[i] = id.Namespace
			}
			return PrintResult(cmd, &ParseResult{
				Input:     args[0],
				Canonical: kb.SerializeIdentifiers(identifiers),
				Resolved:  resolved,
			})
		},
	}
}
