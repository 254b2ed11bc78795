package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/parrot/internal/xref"
)

var dbPath string

var xrefCmd = &cobra.Command{
	Use:   "xref [source-id]",
	Short: "Inspect the cross-reference store",
	Long: `List the parody posts recorded for a source post, or every source
post when no id is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := xref.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if len(args) == 1 {
			ids, err := store.Get(args[0])
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		}

		sources, err := store.Sources()
		if err != nil {
			return err
		}
		for _, src := range sources {
			ids, err := store.Get(src)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d parodies\n", src, len(ids))
		}
		return nil
	},
}

func init() {
	xrefCmd.Flags().StringVar(&dbPath, "db", "./data/parrot.db", "Path to the cross-reference database")
	rootCmd.AddCommand(xrefCmd)
}
