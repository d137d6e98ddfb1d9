// Package cycle implements the hue-cycling pipeline: validate, decode,
// convert to HSV once, produce one frame per hue shift, and encode the
// frames as an infinite-loop animation (GIF or APNG).
package cycle
