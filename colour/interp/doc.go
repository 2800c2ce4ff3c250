// Package interp provides 1-D interpolation and extrapolation over
// tabulated samples.
//
// Available interpolators, from cheapest to highest quality:
//
//   - [LinearInterpolator]:  piecewise-linear (good default)
//   - [HermiteInterpolator]: piecewise-cubic Hermite, uniform grids only
//   - [NullInterpolator]:    degenerate (-Inf, +Inf) placeholder
//
// [Extrapolator] wraps any [Interpolator] and extends it beyond the
// sampled domain, continuing the edge slopes ([MethodLinear]), holding
// the edge values ([MethodConstant]), or returning fixed left/right
// fill values that take precedence over either method.
package interp
