// Package measure provides the unit-safe arithmetic used by every recipe
// calculation: masses in grams and bounded, fixed-point percentages.
//
// # Gram
//
// Gram wraps a github.com/shopspring/decimal value and is never observably
// negative. Subtraction that would go below zero fails with
// errors.ErrCodeNegativeMass instead of clamping:
//
//	flour := measure.MustGram(1000)
//	starter := measure.MustGram(100)
//	rest, err := flour.Sub(starter) // 900.00 g
//
// ParseGram is the single lenient entry point: unparseable text resolves to
// zero mass. All other constructors report errors.
//
// # Percent
//
// Percent[B] is an integer-encoded percentage whose inclusive range and
// number of fraction digits come from the bound type B:
//
//	type SaltBounds struct{}
//
//	func (SaltBounds) Min() uint64     { return 1 }
//	func (SaltBounds) Max() uint64     { return 4 }
//	func (SaltBounds) Decimals() uint8 { return 1 }
//
//	salt, err := measure.PercentFromDecimal[SaltBounds](decimal.RequireFromString("2.5"))
//	salt.Encoded()   // 25
//	salt.AsDecimal() // 0.025
//	salt.String()    // "2.5%"
//
// Dividing two masses yields a Ratio (whole percents, up to 10,000,000%).
// Multiplying a mass by any Percent uses its true fractional value.
package measure
