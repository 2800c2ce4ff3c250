// Package ellipse converts between ellipse parameter forms, samples
// points on an ellipse, and fits an ellipse to scattered points.
//
// Two representations are supported:
//   - [Canonical]: centre, semi-major and semi-minor axes, and
//     orientation in degrees
//   - [Coefficients]: the general conic a*x² + b*x*y + c*y² + d*x +
//     e*y + f = 0
//
// [CanonicalToCoefficients] and [CoefficientsToCanonical] convert
// between the two, [PointAt] evaluates the parametric form, and
// [FitHalir1998] performs the numerically stable direct least squares
// fit of Halir and Flusser (1998).
package ellipse
