// Package pdftrim shrinks the crop box of every page of a PDF by a fixed
// border, hiding scanner frames and dark margins without touching page
// content.
package pdftrim

import (
	"fmt"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/ironsheep/ink-tools/internal/ioerr"
	"github.com/ironsheep/ink-tools/internal/logger"
)

// Rect is a PDF rectangle in user-space points.
type Rect struct {
	LLX float64 `json:"llx" yaml:"llx"`
	LLY float64 `json:"lly" yaml:"lly"`
	URX float64 `json:"urx" yaml:"urx"`
	URY float64 `json:"ury" yaml:"ury"`
}

func (r Rect) Width() float64  { return r.URX - r.LLX }
func (r Rect) Height() float64 { return r.URY - r.LLY }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return (r.LLX + r.URX) / 2, (r.LLY + r.URY) / 2
}

// Inset shrinks r by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{LLX: r.LLX + d, LLY: r.LLY + d, URX: r.URX - d, URY: r.URY - d}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLX, r.LLY, r.URX, r.URY)
}

func fromRectangle(r *types.Rectangle) Rect {
	return Rect{LLX: r.LL.X, LLY: r.LL.Y, URX: r.UR.X, URY: r.UR.Y}
}

func (r Rect) rectangle() *types.Rectangle {
	return types.NewRectangle(r.LLX, r.LLY, r.URX, r.URY)
}

// PageBox holds the effective boxes of one page (1-based). CropBox equals
// MediaBox when the page defines no crop box.
type PageBox struct {
	Page     int  `json:"page" yaml:"page"`
	MediaBox Rect `json:"media_box" yaml:"media_box"`
	CropBox  Rect `json:"crop_box" yaml:"crop_box"`
}

// PageTrim describes the crop box change applied to one page.
type PageTrim struct {
	Page   int  `json:"page" yaml:"page"`
	Before Rect `json:"before" yaml:"before"`
	After  Rect `json:"after" yaml:"after"`
}

// Result summarizes a trim.
type Result struct {
	Input     string     `json:"input" yaml:"input"`
	Output    string     `json:"output,omitempty" yaml:"output,omitempty"`
	Thickness float64    `json:"border_thickness" yaml:"border_thickness"`
	Pages     []PageTrim `json:"pages" yaml:"pages"`
}

// ValidateThickness rejects border thicknesses that can never be applied.
func ValidateThickness(thickness float64) error {
	switch {
	case math.IsNaN(thickness) || math.IsInf(thickness, 0):
		return &ioerr.ValidationError{Field: "border thickness", Value: thickness, Reason: "must be a finite number"}
	case thickness < 0:
		return &ioerr.ValidationError{Field: "border thickness", Value: thickness, Reason: "must not be negative"}
	}
	return nil
}

type Trimmer struct {
	conf   *model.Configuration
	logger *logger.Logger
}

func New(log *logger.Logger) *Trimmer {
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Trimmer{
		conf:   conf,
		logger: log,
	}
}

// PageBoxes returns the effective media and crop box of every page in path.
func (t *Trimmer) PageBoxes(path string) ([]PageBox, error) {
	ctx, err := t.read(path)
	if err != nil {
		return nil, err
	}
	return pageBoxes(ctx)
}

// Plan computes the crop boxes Trim would write, without writing anything.
func (t *Trimmer) Plan(inPath string, thickness float64) (*Result, error) {
	if err := ValidateThickness(thickness); err != nil {
		return nil, err
	}

	ctx, err := t.read(inPath)
	if err != nil {
		return nil, err
	}

	return t.plan(ctx, inPath, thickness)
}

// Trim writes a copy of inPath to outPath with every page's crop box shrunk
// by thickness on all four sides.
//
// Each page's current crop box (its media box when no crop box is set) is the
// reference, so the new box keeps the same center. The media box and page
// content are left unchanged.
//
// Errors:
//   - *ioerr.ValidationError if thickness is negative, not finite, or at
//     least half the smaller dimension of any page's box
//   - *ioerr.DecodeError if inPath is not a readable PDF
//   - *ioerr.EncodeError if outPath cannot be written
//
// Nothing is written unless every page can be trimmed.
func (t *Trimmer) Trim(inPath, outPath string, thickness float64) (*Result, error) {
	if err := ValidateThickness(thickness); err != nil {
		return nil, err
	}

	ctx, err := t.read(inPath)
	if err != nil {
		return nil, err
	}

	result, err := t.plan(ctx, inPath, thickness)
	if err != nil {
		return nil, err
	}

	for _, p := range result.Pages {
		pageDict, _, _, err := ctx.PageDict(p.Page, false)
		if err != nil || pageDict == nil {
			return nil, &ioerr.DecodeError{Path: inPath, Err: fmt.Errorf("page %d: %v", p.Page, err)}
		}
		pageDict.Update("CropBox", p.After.rectangle().Array())
	}

	if err := api.WriteContextFile(ctx, outPath); err != nil {
		return nil, &ioerr.EncodeError{Path: outPath, Err: err}
	}

	result.Output = outPath
	t.logger.Debug("Wrote %d trimmed pages to %s", len(result.Pages), outPath)
	return result, nil
}

func (t *Trimmer) plan(ctx *model.Context, inPath string, thickness float64) (*Result, error) {
	boxes, err := pageBoxes(ctx)
	if err != nil {
		return nil, &ioerr.DecodeError{Path: inPath, Err: err}
	}

	result := &Result{Input: inPath, Thickness: thickness}
	for _, b := range boxes {
		limit := math.Min(b.CropBox.Width(), b.CropBox.Height()) / 2
		if thickness >= limit {
			return nil, &ioerr.ValidationError{
				Field:  "border thickness",
				Value:  thickness,
				Reason: fmt.Sprintf("page %d box %s allows less than %g", b.Page, b.CropBox, limit),
			}
		}

		after := b.CropBox.Inset(thickness)
		t.logger.Trace("Page %d: crop box %s -> %s", b.Page, b.CropBox, after)
		result.Pages = append(result.Pages, PageTrim{Page: b.Page, Before: b.CropBox, After: after})
	}

	return result, nil
}

func (t *Trimmer) read(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ioerr.DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, t.conf)
	if err != nil {
		return nil, &ioerr.DecodeError{Path: path, Err: err}
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, &ioerr.DecodeError{Path: path, Err: err}
	}

	t.logger.Debug("Read %s: %d pages", path, ctx.PageCount)
	return ctx, nil
}

func pageBoxes(ctx *model.Context) ([]PageBox, error) {
	boxes := make([]PageBox, 0, ctx.PageCount)

	for page := 1; page <= ctx.PageCount; page++ {
		_, _, inherited, err := ctx.PageDict(page, false)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if inherited == nil || inherited.MediaBox == nil {
			return nil, fmt.Errorf("page %d has no media box", page)
		}

		box := PageBox{Page: page, MediaBox: fromRectangle(inherited.MediaBox)}
		box.CropBox = box.MediaBox
		if inherited.CropBox != nil {
			box.CropBox = fromRectangle(inherited.CropBox)
		}
		boxes = append(boxes, box)
	}

	return boxes, nil
}
