package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/parrot/internal/config"
	"github.com/vmunix/parrot/internal/match"
	"github.com/vmunix/parrot/internal/title"
)

var (
	similarityThreshold float64
	certaintyThreshold  float64
)

var matchCmd = &cobra.Command{
	Use:   "match <parody-title> <source-title>",
	Short: "Score two titles against each other",
	Long: `Score two titles the way the bot would: normalize both, compute the
word-level edit distance and overlap ratio, and report the certainty
and verdict.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := title.Normalize(args[0])
		candidate := title.Normalize(args[1])

		sel := match.Selector{
			SimilarityThreshold: similarityThreshold,
			CertaintyThreshold:  certaintyThreshold,
		}
		report := sel.Evaluate(target, candidate, title.Distance(target, candidate))

		fmt.Printf("parody tokens:   %v\n", target)
		fmt.Printf("source tokens:   %v\n", candidate)
		fmt.Printf("distance:        %d\n", report.Distance)
		fmt.Printf("max length:      %d\n", report.MaxLen)
		fmt.Printf("overlap:         %.4f\n", report.Overlap)
		fmt.Printf("certainty:       %.4f\n", report.Certainty)
		fmt.Printf("char similarity: %.4f\n", report.CharSimilarity)
		fmt.Printf("match:           %v\n", report.Match)
		return nil
	},
}

func init() {
	matchCmd.Flags().Float64Var(&similarityThreshold, "similarity", config.DefaultSimilarityThreshold, "Similarity threshold")
	matchCmd.Flags().Float64Var(&certaintyThreshold, "certainty", config.DefaultCertaintyThreshold, "Certainty threshold")
	rootCmd.AddCommand(matchCmd)
}
