package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jukasdrj/shelfwarmer/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := format.DefaultRegistry.List()
		if len(names) == 0 {
			fmt.Println("No formats registered")
			return nil
		}

		fmt.Println("Available formats:")
		for _, name := range names {
			f, _ := format.Get(name)
			fmt.Printf("  %-10s %s\n", name, f.Description())
		}

		return nil
	},
}
