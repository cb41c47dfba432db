package main

import (
	"fmt"

	"pokedex_server/internal/models"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the valid Pokemon types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range models.PokeTypes() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
	},
}
