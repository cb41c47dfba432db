// Command pokedex administers the catalog database: migrations, schema checks, seeding and type listing.
package main

import (
	"os"

	"pokedex_server/pkg/colors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		colors.PrintError("%v", err)
		os.Exit(1)
	}
}
