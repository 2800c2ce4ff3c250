// Package difference computes colour difference (delta E) values
// between CIE L*a*b* colours.
//
// Four formulae are implemented:
//   - [CIE1976]: Euclidean distance in Lab space
//   - [CIE1994]: weighted distance with textile or graphic-arts weights
//   - [CIE2000]: CIEDE2000 with chroma-dependent hue rotation
//   - [CMC]: the CMC l:c acceptability formula
//
// [Delta] dispatches between them by [Method] using each formula's
// default weights.
package difference
