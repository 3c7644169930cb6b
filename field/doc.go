// Package field implements constant-time arithmetic modulo 2^255-19.
//
// [Element] type API follows [filippo.io/edwards25519/field.Element],
// but elements are stored as four saturated 64-bit limbs and every
// operation leaves its result fully reduced, so the limbs of any observed
// element are its canonical value.
//
// All operations have input-independent control flow and memory access.
// Conditional behavior is expressed through [Element.Select] and
// [Element.Swap] masks.
package field
