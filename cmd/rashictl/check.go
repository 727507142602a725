package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

var (
	sweepLimit int
	operator   bool
)

var errCheckFailed = errors.New("catalog check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check catalog integrity and that every rashi resolves to trees",
	Long: `check builds the built-in catalog, prints its integrity report and then
resolves every rashi. Without --local the same sweep runs against the
service and each answer is compared with the built-in catalog. With
--operator the service's own integrity report is fetched as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cat, err := catalog.New(catalog.WithLenientIntegrity())
		if err != nil {
			return err
		}

		report := dto.NewCatalogReportResponse(cat.Report())
		ok := printReport("built-in catalog", report)

		resolve := func(_ context.Context, key domain.RashiKey) ([]dto.TreeResponse, error) {
			return dto.NewTreeResponses(cat.Resolve(key)), nil
		}

		if !local {
			api, err := newGuideAPI()
			if err != nil {
				return err
			}

			if operator {
				remote, err := api.catalogReport(ctx)
				if err != nil {
					return fmt.Errorf("fetching operator report: %w", err)
				}

				ok = printReport("service catalog", remote) && ok
			}

			resolve = func(ctx context.Context, key domain.RashiKey) ([]dto.TreeResponse, error) {
				rec, err := api.trees(ctx, string(key))
				if err != nil {
					return nil, err
				}

				return rec.Trees, compareTrees(rec.Trees, dto.NewTreeResponses(cat.Resolve(key)))
			}
		}

		results := app.SweepRashis(ctx, sweepLimit, func(ctx context.Context, key domain.RashiKey) ([]dto.TreeResponse, error) {
			trees, err := resolve(ctx, key)
			if err != nil {
				return nil, err
			}

			return trees, checkResolution(trees)
		})

		fmt.Println()

		for _, r := range results {
			status := "ok"
			if r.Err != nil {
				status = "FAIL: " + r.Err.Error()
			}

			fmt.Printf("%-10s %2d trees  %s\n", r.Key, len(r.Value), status)
		}

		if failed := app.Failed(results); len(failed) > 0 || !ok {
			return fmt.Errorf("%w: %d rashi(s) failed", errCheckFailed, len(failed))
		}

		return nil
	},
}

func printReport(title string, r dto.CatalogReportResponse) bool {
	fmt.Printf("%s: %d rashis, %d trees, %d mappings\n", title, r.Rashis, r.Trees, r.Mappings)

	for _, p := range r.Problems {
		fmt.Printf("  problem: %s\n", p)
	}

	if len(r.UnusedTrees) > 0 {
		fmt.Printf("  unused trees: %v\n", r.UnusedTrees)
	}

	return r.Healthy
}

// checkResolution holds every rashi to a non-empty list with exactly the
// first entry primary.
func checkResolution(trees []dto.TreeResponse) error {
	if len(trees) == 0 {
		return errors.New("no trees")
	}

	for i, t := range trees {
		if t.IsPrimary != (i == 0) {
			return fmt.Errorf("tree %s at position %d has is_primary=%t", t.ID, i, t.IsPrimary)
		}
	}

	return nil
}

func compareTrees(remote, builtin []dto.TreeResponse) error {
	if len(remote) != len(builtin) {
		return fmt.Errorf("service returned %d trees, built-in catalog has %d", len(remote), len(builtin))
	}

	for i := range remote {
		if remote[i].ID != builtin[i].ID {
			return fmt.Errorf("position %d is %s, built-in catalog has %s", i, remote[i].ID, builtin[i].ID)
		}
	}

	return nil
}

func init() {
	checkCmd.Flags().IntVar(&sweepLimit, "parallel", 4, "Maximum concurrent requests during the sweep")
	checkCmd.Flags().BoolVar(&operator, "operator", false, "Also fetch the service's operator catalog report")
	rootCmd.AddCommand(checkCmd)
}
