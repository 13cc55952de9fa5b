package bcd

type nibble uint8

const (
	low nibble = iota
	high
)

// Cursor refers to a single digit of an Int. It is only valid when obtained
// from Int.At and stays bound to the same digit of the same Int.
type Cursor struct {
	b     *byte
	which nibble
}

// Get returns the current value of the digit.
func (c Cursor) Get() uint8 {
	if c.which == high {
		return *c.b >> 4
	}

	return *c.b & 0x0f
}

// Set stores v in the digit. Values above 9 are rejected and the digit keeps
// its previous value.
func (c Cursor) Set(v uint8) error {
	if v > 9 {
		return InvalidDigit.New("value=%d", v)
	}

	if c.which == high {
		*c.b = v<<4 | *c.b&0x0f
	} else {
		*c.b = *c.b&0xf0 | v
	}

	return nil
}

func (x *Int) cursor(i int) Cursor {
	c := Cursor{
		b:     &x.value[indexOf(i)],
		which: low,
	}

	if i%2 == 1 {
		c.which = high
	}

	return c
}

// At returns a cursor for digit i (0 is the least significant digit).
func (x *Int) At(i int) (c Cursor, err error) {
	err = checkIndex(i)
	if err != nil {
		return c, err
	}

	return x.cursor(i), nil
}

// Digit returns digit i (0 is the least significant digit).
func (x Int) Digit(i int) (uint8, error) {
	err := checkIndex(i)
	if err != nil {
		return 0, err
	}

	return x.cursor(i).Get(), nil
}

// SetDigit sets digit i to v.
func (x *Int) SetDigit(i int, v uint8) error {
	err := checkIndex(i)
	if err != nil {
		return err
	}

	return x.cursor(i).Set(v)
}
