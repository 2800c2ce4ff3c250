package ellipse

import "errors"

var (
	// ErrNotEllipse is returned when general conic coefficients do not
	// describe a real ellipse.
	ErrNotEllipse = errors.New("ellipse: coefficients do not describe an ellipse")

	// ErrTooFewPoints is returned when a fit receives fewer points than
	// the method can constrain.
	ErrTooFewPoints = errors.New("ellipse: too few points")

	// ErrDegenerate is returned when the fit points are degenerate, for
	// example collinear, so no ellipse passes near them.
	ErrDegenerate = errors.New("ellipse: degenerate point configuration")
)
