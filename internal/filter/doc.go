// Package filter provides morphological filters for single-channel masks.
//
// This package contains:
//   - Max filter (separable rectangular dilation)
//   - Iterated dilation
//   - Saturating mask subtraction (outline extraction)
//
// All filters allocate a fresh destination and never modify their inputs,
// so a source mask can be shared read-only between goroutines.
package filter
