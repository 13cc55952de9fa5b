package bcd

import "github.com/zeebo/errs"

// Error classes.
var (
	// Error wraps errors leaving the encoding methods.
	Error = errs.Class("bcd")

	// InvalidDigit is a write of a value outside 0 through 9.
	InvalidDigit = errs.Class("invalid digit")

	// IndexOutOfRange is a digit position outside [0, MaxDigits).
	IndexOutOfRange = errs.Class("index out of range")

	// Overflow is a result that does not fit in MaxDigits digits.
	Overflow = errs.Class("overflow")

	// ParseError is malformed textual or binary input.
	ParseError = errs.Class("parse")
)
