// Package yellowness computes yellowness indices of CIE XYZ colours
// after the ASTM D1925 and ASTM E313 practices.
//
// Tristimulus values are expected on the [0, 100] domain. Positive
// indices indicate a yellowish appearance, negative a bluish one.
package yellowness
