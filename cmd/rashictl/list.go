package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the twelve rashis in zodiac order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		var list dto.RashiListResponse

		if local {
			list = dto.NewRashiListResponse(catalog.Default().Rashis())
		} else {
			api, err := newGuideAPI()
			if err != nil {
				return err
			}

			if list, err = api.rashis(ctx); err != nil {
				return fmt.Errorf("listing rashis: %w", err)
			}
		}

		if asJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKEY\tRASHI\tSYMBOL\tELEMENT\tRULER")

		for _, r := range list.Rashis {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				r.SignNumber, r.Key, r.DisplayLabel, r.Symbol, r.Element, r.RulingPlanet)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
