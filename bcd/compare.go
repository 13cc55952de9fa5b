package bcd

import "bytes"

// Cmp returns -1, 0 or +1 when x is less than, equal to or greater than y.
//
// The most significant digits are stored first so the byte order of the
// packed values is the numeric order.
func (x Int) Cmp(y Int) int {
	return bytes.Compare(x.value[:], y.value[:])
}

func (x Int) Equal(y Int) bool          { return x == y }
func (x Int) Less(y Int) bool           { return x.Cmp(y) < 0 }
func (x Int) LessOrEqual(y Int) bool    { return !y.Less(x) }
func (x Int) Greater(y Int) bool        { return y.Less(x) }
func (x Int) GreaterOrEqual(y Int) bool { return !x.Less(y) }
