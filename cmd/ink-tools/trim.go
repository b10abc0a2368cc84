package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/ink-tools/internal/pdftrim"
)

var trimCmd = &cobra.Command{
	Use:   "trim <input.pdf> <output.pdf> <border_thickness>",
	Short: "Shrink every page's crop box by a border",
	Long: `Trim writes a copy of input.pdf whose pages show border_thickness fewer
points (1/72 inch) on every side. Each page's current crop box, or its media
box when none is set, is shrunk around its center. Page content and media
boxes are unchanged.

The command fails without writing anything if border_thickness is negative
or at least half the smaller dimension of any page.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		thickness, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid border thickness %q: %w", args[2], err)
		}

		trimmer := pdftrim.New(appLogger)

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		var result *pdftrim.Result
		if dryRun {
			result, err = trimmer.Plan(args[0], thickness)
		} else {
			result, err = trimmer.Trim(args[0], args[1], thickness)
		}
		if err != nil {
			return err
		}

		for _, p := range result.Pages {
			appLogger.Info("Page %d: %s -> %s", p.Page, p.Before, p.After)
		}
		if dryRun {
			appLogger.Info("Dry run: %d pages would be trimmed by %g points", len(result.Pages), thickness)
			return nil
		}
		appLogger.Info("Trimmed PDF saved as %s", result.Output)
		return nil
	},
}

func init() {
	trimCmd.Flags().Bool("dry-run", false, "print the new crop boxes without writing output.pdf")

	rootCmd.AddCommand(trimCmd)
}
