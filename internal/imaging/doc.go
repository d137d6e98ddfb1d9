// Package imaging provides the image handling layer for hue-cycle:
// loading and decoding source images, normalizing them to 8-bit RGB,
// converting between RGB and the 8-bit HSV representation the hue
// rotation operates on, and analyzing an image's hue content.
//
// # HSV Representation
//
// Hue, saturation and value are each quantized to a single byte. The hue
// byte maps the full color wheel onto a 255-step cycle: red is 0, green
// is 85, blue is 170, and hue arithmetic wraps modulo 255 (not 256).
// Converting an image to HSV and back reproduces the source within
// small quantization error; the error is rounding noise, not a
// systematic bias.
//
// # Supported Input Formats
//
// Loading registers decoders for PNG, JPEG, GIF, WebP, BMP and TIFF.
// Images in any of these formats are accepted and flattened to RGB;
// alpha and palette information is discarded.
package imaging
