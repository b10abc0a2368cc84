// Package imaging implements the sketch conversion pipeline.
//
// A sketch is an edge drawing derived from a photograph or scan. The pipeline
// is a single pass with fixed parameters:
//
//  1. Grayscale: RGB -> luminance using ITU-R BT.601 weights
//     (0.299*R + 0.587*G + 0.114*B)
//  2. Gaussian blur: 5x5 binomial kernel (sigma derived from the kernel size)
//  3. Canny edge detection with thresholds 30 (low) and 100 (high)
//  4. Mean brightness of the grayscale image
//  5. Inversion of the edge map when the mean is below 128
//
// The inversion saves printer ink: a dark photograph would otherwise print as
// white strokes on a mostly black page. After inversion it prints as dark
// strokes on a white page, like a pencil sketch.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner. Intermediate images always share the bounds of the input.
//
// # Formats
//
// Load decodes PNG, JPEG, GIF, BMP and TIFF. Save picks the encoder from the
// output file extension; edge maps stay single-channel where the format
// allows it.
//
// # Error Handling
//
// Load returns *ioerr.DecodeError for anything that does not yield a
// non-empty image. Save returns *ioerr.EncodeError when the output cannot be
// produced. Nothing is written when decoding fails.
//
// # Thread Safety
//
// Every function is stateless and may be called concurrently on different
// images.
package imaging
