// Package image provides the geometric operations behind the rainbow
// gradient: affine matrices, scale and rotate via golang.org/x/image/draw,
// centred crops and a pool of reusable RGBA scratch buffers.
package image
