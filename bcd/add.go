package bcd

// AddAssign sets x to x + y.
//
// If the sum needs more than MaxDigits digits an Overflow error is returned
// and x is left holding the sum modulo 10^MaxDigits. It is not restored to
// its previous value.
func (x *Int) AddAssign(y Int) error {
	var carry uint8

	for i := 0; i < MaxDigits; i++ {
		c := x.cursor(i)

		sum := c.Get() + y.cursor(i).Get() + carry

		carry = 0
		if sum > 9 {
			sum -= 10
			carry = 1
		}

		err := c.Set(sum)
		if err != nil {
			return err
		}
	}

	if carry != 0 {
		return Overflow.New("sum exceeds %d digits", MaxDigits)
	}

	return nil
}

// Add returns x + y. On overflow the truncated sum is returned along with the
// Overflow error. x is not modified.
func (x Int) Add(y Int) (Int, error) {
	err := x.AddAssign(y)

	return x, err
}
