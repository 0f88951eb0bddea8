package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog source",
	Long:  `Loads the catalog and checks structural integrity: unique checklist IDs and unique item names. Exits non-zero on the first problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		summaries, err := catalog.ListChecklists()
		if err != nil {
			return err
		}

		total := 0
		for _, summary := range summaries {
			total += summary.ItemCount
		}
		fmt.Printf("OK: %d checklist(s), %d item(s)\n", len(summaries), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
