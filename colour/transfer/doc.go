// Package transfer implements camera log transfer functions.
//
// Supported curves:
//   - [DaVinciIntermediateOETF] and its inverse, the Blackmagic Design
//     DaVinci Intermediate curve
//   - [FLogEncode] / [FLogDecode], the Fujifilm F-Log curve
//   - [FLog2Encode] / [FLog2Decode], the Fujifilm F-Log2 curve
//
// The F-Log functions accept [Option] values controlling bit depth,
// code value range, and reflection scaling. [LegalToFull] and
// [FullToLegal] convert normalised code values between legal and full
// range.
package transfer
