// Package bcd provides a fixed capacity unsigned decimal integer stored as
// packed binary coded decimal.
//
// An Int holds MaxDigits decimal digits, two per byte. Each byte holds a pair
// of digits: the odd (more significant) digit in the high nibble and the even
// digit in the low nibble. The pairs are stored most significant first:
//
//  | byte  | 0           | 1           | ... | 15        |
//  |-------|-------------|-------------|-----|-----------|
//  | high  | digit 31    | digit 29    | ... | digit 1   |
//  | low   | digit 30    | digit 28    | ... | digit 0   |
//  |-------|-------------|-------------|-----|-----------|
//
// For example 1234 is stored as:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 1 | 0 . 0 . 1 . 0 | byte 14 = 0x12
//  | 0 . 0 . 1 . 1 | 0 . 1 . 0 . 0 | byte 15 = 0x34
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Because the most significant pair comes first, comparing the raw bytes
// lexicographically is the same as comparing the numbers.
//
// Every nibble always holds 0 through 9. Writes of larger values fail and
// leave the Int unchanged.
//
// Addition
//
// Addition works digit by digit with a carry. A carry out of the most
// significant digit is reported as an Overflow error. AddAssign does not roll
// back: after an overflow the receiver holds the sum modulo 10^MaxDigits.
package bcd
