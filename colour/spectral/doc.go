// Package spectral provides spectral power distributions: the
// wavelength [Shape] describing a uniform grid, tabulated
// [Distribution] and [MultiDistribution] values over such grids, and
// generators for reference distributions.
//
// Available generators:
//
//   - [SDConstant], [SDZeros], [SDOnes]: flat distributions
//   - [SDGaussianNormal]: Gaussian from mean and standard deviation
//   - [SDGaussianFWHM]:   Gaussian from peak and full width at half maximum
//   - [SDSingleLEDOhno2005]: single-LED model after Ohno (2005)
//   - [SDMultiLEDsOhno2005]: superposition of Ohno (2005) LEDs
//   - [MSDSConstant], [MSDSZeros], [MSDSOnes]: multi-channel flats
//
// [SDGaussian], [SDSingleLED] and [SDMultiLEDs] select the model
// through the [GaussianMethod] and [LEDMethod] enums.
//
// Distributions reconstruct values between and beyond their samples
// through the interp package; [Distribution.At] is therefore defined
// for every finite wavelength. Smoothing ([Smooth]) and measurement
// ([Analyze]) operate on the tabulated values.
package spectral
