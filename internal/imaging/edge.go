package imaging

import (
	"image"
)

// Edge map pixel values.
const (
	EdgeOff uint8 = 0
	EdgeOn  uint8 = 255
)

// Canny performs Canny edge detection on a single-channel image.
//
// The input is expected to be smoothed already (see GaussianBlur5). The
// result has the same bounds as gray and contains only EdgeOn (255) for
// edges and EdgeOff (0) elsewhere.
//
// Parameters:
//   - gray: Source luminance image.
//   - thresholdLow: Gradient magnitudes at or below this are discarded.
//   - thresholdHigh: Gradient magnitudes above this are always kept.
//
// # Algorithm
//
//  1. Gradient computation: 3x3 Sobel operators for X and Y on 0-255
//     intensities, magnitude = |Gx| + |Gy|
//
//  2. Non-maximum suppression: thin edges to 1-pixel width by keeping only
//     local maxima along the gradient direction, quantized to 0, 45, 90 or
//     135 degrees
//
//  3. Hysteresis thresholding:
//     - Pixels above thresholdHigh are strong edges (always kept)
//     - Pixels above thresholdLow are weak edges, kept only if they are
//     8-connected to a strong edge through other kept pixels
//     - Pixels at or below thresholdLow are discarded
//
// Pixels on the outermost rows and columns never become edges.
func Canny(gray *image.Gray, thresholdLow, thresholdHigh int) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	result := image.NewGray(bounds)
	if width < 3 || height < 3 {
		return result
	}

	at := func(x, y int) int {
		return int(gray.Pix[clamp(y, 0, height-1)*gray.Stride+clamp(x, 0, width-1)])
	}

	// Compute gradients using Sobel operator
	gradX := make([]int, width*height)
	gradY := make([]int, width*height)
	magnitude := make([]int, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gx := (at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x-1, y) + at(x-1, y+1))
			gy := (at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1))

			i := y*width + x
			gradX[i] = gx
			gradY[i] = gy
			magnitude[i] = abs(gx) + abs(gy)
		}
	}

	// Non-maximum suppression combined with the first threshold pass.
	const (
		strong = 2
		weak   = 1
	)
	class := make([]uint8, width*height)
	stack := make([]int, 0, width)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			mag := magnitude[i]
			if mag <= thresholdLow {
				continue
			}
			if !isLocalMaximum(magnitude, gradX[i], gradY[i], i, width) {
				continue
			}

			if mag > thresholdHigh {
				class[i] = strong
				stack = append(stack, i)
			} else {
				class[i] = weak
			}
		}
	}

	// Edge tracking by hysteresis: grow strong edges through weak neighbors.
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result.Pix[(i/width)*result.Stride+i%width] = EdgeOn

		for _, n := range [...]int{-width - 1, -width, -width + 1, -1, 1, width - 1, width, width + 1} {
			j := i + n
			if class[j] == weak {
				class[j] = strong
				stack = append(stack, j)
			}
		}
	}

	return result
}

// tan(22.5°) and tan(67.5°) in 15-bit fixed point, so direction
// quantization stays in integer arithmetic.
const (
	tan22 = 13573 // 0.4142135 * 2^15
	tan67 = 79109 // 2.4142135 * 2^15
)

// isLocalMaximum reports whether the magnitude at index i is not exceeded by
// its two neighbors along the gradient direction. Ties are broken toward the
// lower-index neighbor so a two-pixel ridge produces a single edge.
func isLocalMaximum(magnitude []int, gx, gy, i, width int) bool {
	mag := magnitude[i]
	ay := abs(gy) << 15

	switch {
	case ay < abs(gx)*tan22:
		// Near-horizontal gradient: vertical edge, compare left and right.
		return mag > magnitude[i-1] && mag >= magnitude[i+1]
	case ay > abs(gx)*tan67:
		// Near-vertical gradient: horizontal edge, compare above and below.
		return mag > magnitude[i-width] && mag >= magnitude[i+width]
	default:
		if (gx < 0) != (gy < 0) {
			return mag > magnitude[i-width+1] && mag > magnitude[i+width-1]
		}
		return mag > magnitude[i-width-1] && mag > magnitude[i+width+1]
	}
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
