package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/ink-tools/internal/batch"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_dir> <output_dir>",
	Short: "Convert every image in a directory to a line sketch",
	Long: `Convert reads every .png, .jpg, .jpeg, .bmp and .tiff file directly inside
input_dir (extensions are matched case-insensitively) and writes a sketch with
the same name to output_dir, creating it if needed.

Bright images produce white strokes on black. Images whose mean brightness is
below 128 are inverted to black strokes on white. Other files and
subdirectories are skipped. A file that fails to convert is logged and the
batch continues; the command exits non-zero if any file failed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := batch.New(appLogger).Run(ctx, args[0], args[1])
		if summary != nil {
			summary.Print(appLogger)
		}

		if report, _ := cmd.Flags().GetString("report"); report != "" && summary != nil {
			if werr := summary.WriteReport(report); werr != nil {
				appLogger.Error("%v", werr)
			} else {
				appLogger.Info("Report written to %s", report)
			}
		}

		if err != nil {
			return err
		}
		if summary.HasFailures() {
			return fmt.Errorf("%d image(s) failed to convert", summary.Failed)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("report", "", "write a YAML report of every processed entry to this file")

	rootCmd.AddCommand(convertCmd)
}
