// Package batch runs the sketch converter over every image in a directory.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/ink-tools/internal/imaging"
	"github.com/ironsheep/ink-tools/internal/logger"
)

// ImageExtensions lists the file extensions (lower case) the batch converts.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff"}

// IsImageFile reports whether name has one of ImageExtensions, ignoring case.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ConvertFunc converts one image file. imaging.ConvertFile is the default.
type ConvertFunc func(inPath, outPath string) (*imaging.SketchResult, error)

type Runner struct {
	convert ConvertFunc
	logger  *logger.Logger
}

type Option func(*Runner)

// WithConverter replaces the per-file conversion.
func WithConverter(fn ConvertFunc) Option {
	return func(r *Runner) {
		r.convert = fn
	}
}

func New(log *logger.Logger, options ...Option) *Runner {
	r := &Runner{
		convert: imaging.ConvertFile,
		logger:  log,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Run converts every image directly inside inputDir into outputDir, keeping
// file names.
//
// Entries are processed one at a time in lexical name order. Subdirectories
// and files without an image extension are skipped. A file that fails to
// convert is logged and recorded in the summary; the batch continues.
//
// The returned error is reserved for failures that stop the whole batch: the
// output directory cannot be created, inputDir cannot be listed, or ctx is
// cancelled. The summary covers whatever was processed up to that point.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	summary := &Summary{InputDir: inputDir, OutputDir: outputDir}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to read input directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := entry.Name()

		if entry.IsDir() {
			r.logger.Info("Skipping directory: %s", name)
			summary.add(FileResult{Name: name, Status: StatusSkipped, Reason: "directory"})
			continue
		}
		if !IsImageFile(name) {
			r.logger.Info("Skipping non-image file: %s", name)
			summary.add(FileResult{Name: name, Status: StatusSkipped, Reason: "not an image"})
			continue
		}

		inPath := filepath.Join(inputDir, name)
		outPath := filepath.Join(outputDir, name)
		r.logger.Info("Processing %s -> %s", inPath, outPath)

		result, err := r.convert(inPath, outPath)
		if err != nil {
			r.logger.Error("Failed to convert %s: %v", name, err)
			summary.add(FileResult{Name: name, Status: StatusFailed, Reason: err.Error()})
			continue
		}

		r.logger.Debug("%s: %dx%d, mean brightness %.1f, %d edge pixels, inverted=%v",
			name, result.Width, result.Height, result.MeanBrightness, result.EdgePixels, result.Inverted)
		summary.add(FileResult{Name: name, Status: StatusConverted, Output: outPath, Sketch: result})
	}

	return summary, nil
}
