package bcd

import "strings"

// MaxDigits is the number of decimal digits an Int holds.
const MaxDigits = 32

// size is the number of bytes backing an Int.
const size = MaxDigits / 2

// Max is the largest representable value (MaxDigits nines).
var Max = MustParse(strings.Repeat("9", MaxDigits))

// Int is an unsigned decimal integer of up to MaxDigits digits stored as
// packed binary coded decimal. The zero value is 0.
//
// Int is a value type: assigning or passing an Int copies its digits.
type Int struct {
	value [size]byte
}

// indexOf returns the position in value of the byte holding digit i.
func indexOf(i int) int {
	return size - 1 - i/2
}

func checkIndex(i int) error {
	if i < 0 || i >= MaxDigits {
		return IndexOutOfRange.New("i=%d max=%d", i, MaxDigits)
	}

	return nil
}

// pack returns the byte holding the two digit number pair (0 through 99).
func pack(pair uint64) byte {
	return byte(pair/10)<<4 | byte(pair%10)
}

// unpack returns the two digit number held in b.
func unpack(b byte) uint64 {
	return uint64(b>>4)*10 + uint64(b&0x0f)
}

// FromUint64 returns n as an Int. Digits of n beyond MaxDigits are dropped.
func FromUint64(n uint64) (x Int) {
	for i := size - 1; i >= 0; i-- {
		x.value[i] = pack(n % 100)
		n /= 100
	}

	return x
}

// Parse returns the Int for a string of decimal digits. The last character
// is the least significant digit. The empty string is 0.
//
// Strings longer than MaxDigits or containing anything other than '0'
// through '9' are rejected with a ParseError.
func Parse(s string) (x Int, err error) {
	defer ParseError.WrapP(&err)

	if len(s) > MaxDigits {
		return Int{}, IndexOutOfRange.New("len=%d max=%d", len(s), MaxDigits)
	}

	for i := 0; i < len(s); i++ {
		offset := len(s) - 1 - i

		ch := s[offset]
		if ch < '0' || ch > '9' {
			return Int{}, InvalidDigit.New("%q at offset %d", ch, offset)
		}

		err = x.SetDigit(i, ch-'0')
		if err != nil {
			return Int{}, err
		}
	}

	return x, nil
}

// MustParse is like Parse but panics if s is invalid.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Uint64 returns x as a uint64. Values of 2^64 or more wrap.
func (x Int) Uint64() (n uint64) {
	for _, b := range x.value {
		n = n*100 + unpack(b)
	}

	return n
}

// String returns the decimal digits of x without leading zeros.
func (x Int) String() string {
	var buf [MaxDigits]byte

	for i, b := range x.value {
		buf[2*i] = '0' + (b >> 4)
		buf[2*i+1] = '0' + (b & 0x0f)
	}

	s := buf[:]
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}

	return string(s)
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x == Int{}
}
