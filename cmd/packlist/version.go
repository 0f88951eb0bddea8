package main

import (
	"fmt"

	"github.com/spf13/cobra"

	packlist "github.com/wanderkit/packlist"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("packlist", packlist.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
