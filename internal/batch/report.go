package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/ink-tools/internal/imaging"
	"github.com/ironsheep/ink-tools/internal/logger"
)

// File outcomes recorded in a Summary.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// FileResult is the outcome for one directory entry.
type FileResult struct {
	Name   string                `json:"name" yaml:"name"`
	Status string                `json:"status" yaml:"status"`
	Output string                `json:"output,omitempty" yaml:"output,omitempty"`
	Reason string                `json:"reason,omitempty" yaml:"reason,omitempty"`
	Sketch *imaging.SketchResult `json:"sketch,omitempty" yaml:"sketch,omitempty"`
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	InputDir  string       `json:"input_dir" yaml:"input_dir"`
	OutputDir string       `json:"output_dir" yaml:"output_dir"`
	Converted int          `json:"converted" yaml:"converted"`
	Skipped   int          `json:"skipped" yaml:"skipped"`
	Failed    int          `json:"failed" yaml:"failed"`
	Files     []FileResult `json:"files" yaml:"files"`
}

func (s *Summary) add(r FileResult) {
	switch r.Status {
	case StatusConverted:
		s.Converted++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Files = append(s.Files, r)
}

// HasFailures reports whether any file failed to convert.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}

// Print logs the totals and every failure.
func (s *Summary) Print(log *logger.Logger) {
	log.Info("Processing complete:")
	log.Info("- Images converted: %d", s.Converted)
	log.Info("- Entries skipped: %d", s.Skipped)
	log.Info("- Images failed: %d", s.Failed)
	for _, f := range s.Files {
		if f.Status == StatusFailed {
			log.Info("  %s: %s", f.Name, f.Reason)
		}
	}
	log.Info("- Sketches saved to: %s", s.OutputDir)
}

// WriteReport writes the summary to path as YAML.
func (s *Summary) WriteReport(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
