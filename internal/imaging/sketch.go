package imaging

import (
	"image"
)

// Fixed pipeline parameters.
const (
	// CannyLow is the hysteresis low threshold on gradient magnitude.
	CannyLow = 30
	// CannyHigh is the hysteresis high threshold on gradient magnitude.
	CannyHigh = 100
	// DarkThreshold is the mean brightness below which an image counts as
	// predominantly dark and its edge map is inverted.
	DarkThreshold = 128.0
)

// SketchResult summarizes one sketch conversion.
type SketchResult struct {
	// Width of the output image in pixels (same as input).
	Width int `json:"width" yaml:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height" yaml:"height"`

	// MeanBrightness is the mean grayscale intensity of the input (0-255).
	MeanBrightness float64 `json:"mean_brightness" yaml:"mean_brightness"`

	// Inverted is true when the edge map was inverted because the input was
	// predominantly dark.
	Inverted bool `json:"inverted" yaml:"inverted"`

	// EdgePixels is the number of pixels detected as edges, counted before
	// any inversion.
	EdgePixels int `json:"edge_pixels" yaml:"edge_pixels"`
}

// Sketch turns img into a single-channel edge drawing.
//
// Without inversion the drawing has white (255) strokes on a black (0)
// background. When the mean brightness of the grayscale image is below
// DarkThreshold the polarity is swapped, giving black strokes on white.
//
// The output has the same bounds as img. Sketch is deterministic: equal
// inputs produce equal outputs.
func Sketch(img image.Image) (*image.Gray, *SketchResult) {
	gray := Grayscale(img)
	edges := Canny(GaussianBlur5(gray), CannyLow, CannyHigh)
	mean := MeanBrightness(gray)

	result := &SketchResult{
		Width:          edges.Bounds().Dx(),
		Height:         edges.Bounds().Dy(),
		MeanBrightness: mean,
		EdgePixels:     countEdges(edges),
	}

	if IsDark(mean) {
		Invert(edges)
		result.Inverted = true
	}

	return edges, result
}

// IsDark reports whether a mean brightness counts as predominantly dark.
func IsDark(mean float64) bool {
	return mean < DarkThreshold
}

// Invert flips every pixel of gray in place (v -> 255-v).
func Invert(gray *image.Gray) {
	b := gray.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for i, v := range row {
			row[i] = 255 - v
		}
	}
}

// ConvertFile loads the image at inPath, sketches it and writes the result
// to outPath in the format implied by the output extension.
//
// Errors:
//   - *ioerr.DecodeError if inPath cannot be decoded; nothing is written
//   - *ioerr.EncodeError if outPath cannot be written
func ConvertFile(inPath, outPath string) (*SketchResult, error) {
	img, err := Load(inPath)
	if err != nil {
		return nil, err
	}

	edges, result := Sketch(img)

	if err := Save(edges, outPath); err != nil {
		return nil, err
	}

	return result, nil
}

func countEdges(edges *image.Gray) int {
	b := edges.Bounds()
	n := 0
	for y := 0; y < b.Dy(); y++ {
		for _, v := range edges.Pix[y*edges.Stride : y*edges.Stride+b.Dx()] {
			if v == EdgeOn {
				n++
			}
		}
	}
	return n
}
