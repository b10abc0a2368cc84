package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// ITU-R BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale reduces img to a single 8-bit luminance channel.
//
// The result has the same bounds as img. Alpha is dropped before the luma
// step: a transparent pixel keeps its stored color rather than turning black.
func Grayscale(img image.Image) *image.Gray {
	lum := effect.GrayscaleWithWeights(opaque(img), lumaR, lumaG, lumaB)

	// bild returns RGBA with equal channels, rebased to the origin.
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gray.Pix[y*gray.Stride+x] = lum.Pix[y*lum.Stride+x*4]
		}
	}
	gray.Rect = bounds
	return gray
}

// opaque returns an unpremultiplied copy of img with every alpha set to 255.
func opaque(img image.Image) *image.NRGBA {
	flat := imaging.Clone(img)
	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 0xff
	}
	return flat
}

// MeanBrightness returns the arithmetic mean of all pixel intensities of gray,
// in the range [0, 255]. An empty image has a mean of 0.
func MeanBrightness(gray *image.Gray) float64 {
	b := gray.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}

	var sum uint64
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for _, v := range row {
			sum += uint64(v)
		}
	}
	return float64(sum) / float64(n)
}

// gaussianKernel5 is the 5x5 Gaussian kernel with sigma derived from the
// kernel size: the outer product of the binomial row [1 4 6 4 1].
//
//	1  4  6  4  1
//	4 16 24 16  4
//	6 24 36 24  6
//	4 16 24 16  4
//	1  4  6  4  1
//
// Total kernel sum = 256, used for normalization.
func gaussianKernel5() *convolution.Kernel {
	row := [5]float64{1, 4, 6, 4, 1}

	k := convolution.NewKernel(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			k.Matrix[y*k.Width+x] = row[y] * row[x]
		}
	}
	return k
}

// GaussianBlur5 smooths gray with the fixed 5x5 Gaussian kernel to suppress
// high-frequency noise before edge detection.
//
// Border pixels use clamped (replicated) edge values. Results are rounded to
// the nearest level.
func GaussianBlur5(gray *image.Gray) *image.Gray {
	blurred := convolution.Convolve(gray, gaussianKernel5().Normalized(), &convolution.Options{
		Bias:      0.5,
		Wrap:      false,
		KeepAlpha: false,
	})

	// Convolve works in RGBA; the channels are equal for a gray source.
	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x] = blurred.Pix[y*blurred.Stride+x*4]
		}
	}
	return out
}
