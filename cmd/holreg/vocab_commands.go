package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nonmodernist/holreg-database/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Controlled vocabulary utilities",
	}

	vocabCmd.AddCommand(newVocabInitCommand(ctx))
	vocabCmd.AddCommand(newVocabUsageCommand(ctx))

	return vocabCmd
}

func newVocabInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed the controlled vocabulary and subject mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			summary, err := vocab.NewSeeder(st, logger).Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed vocabulary: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d terms and %d subject mappings\n",
				summary.Terms, summary.Mappings)
			return nil
		},
	}
}

func newVocabUsageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show how often each controlled term is assigned",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			terms, err := st.VocabularyUsage(cmd.Context())
			if err != nil {
				return fmt.Errorf("vocabulary usage: %w", err)
			}

			rows := make([][]string, 0, len(terms))
			for _, term := range terms {
				rows = append(rows, []string{
					term.Term, term.Facet, fmt.Sprintf("%d", term.UsageCount),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Term", "Facet", "Films"},
				rows, 3))
			return nil
		},
	}
}
