// Package imaging is the image backend of the photo editor.
//
// Every pixel operation the editor offers is delegated from here to an
// imaging library: github.com/disintegration/imaging for decoding, encoding,
// geometry and fitting, and github.com/anthonynsimon/bild for the
// brightness, contrast and grayscale curves. Nothing in this package keeps
// state between calls; each operation takes an image and returns a new one,
// leaving its input untouched.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X increases to the right, Y increases downward
//   - For boxes, (Min.X, Min.Y) is inclusive and (Max.X, Max.Y) is exclusive
//
// Crop boxes are expressed relative to the top-left corner of the image as
// it is shown, which is how the display surface reports pointer positions.
//
// # Formats
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding picks the
// format from the destination file extension and supports PNG, JPEG, GIF,
// BMP and TIFF.
//
// # Color Representation
//
// Colors sampled with SampleColor are returned in several forms:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB / RGBA: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
