package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

var treesCmd = &cobra.Command{
	Use:   "trees RASHI_KEY",
	Short: "Show the recommended trees for a rashi, primary first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		key := args[0]

		var rec dto.TreesByRashiResponse

		if local {
			svc := app.NewCatalogService(catalog.Default(), nil)
			rec = dto.NewTreesByRashiResponse(svc.TreesByRashi(ctx, domain.RashiKey(key)))
		} else {
			api, err := newGuideAPI()
			if err != nil {
				return err
			}

			if rec, err = api.trees(ctx, key); err != nil {
				return fmt.Errorf("fetching trees for %s: %w", key, err)
			}
		}

		if asJSON {
			return printJSON(rec)
		}

		printTrees(rec.RashiLabel, rec.Trees)

		return nil
	},
}

func printTrees(label string, trees []dto.TreeResponse) {
	fmt.Println(label)
	fmt.Println(strings.Repeat("=", len([]rune(label))))

	if len(trees) == 0 {
		fmt.Println("no trees recommended")
		return
	}

	for _, t := range trees {
		marker := " "
		if t.IsPrimary {
			marker = "*"
		}

		fmt.Printf("%s %-20s %s\n", marker, t.Name, t.ScientificName)

		if t.CareTips != "" {
			fmt.Printf("    care: %s\n", t.CareTips)
		}
	}
}

func init() {
	rootCmd.AddCommand(treesCmd)
}
