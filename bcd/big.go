package bcd

import "math/big"

var (
	hundred = big.NewInt(100)

	// limit is 10^MaxDigits, the smallest value that does not fit.
	limit = new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxDigits), nil)
)

// BigInt returns x as a big.Int.
func (x Int) BigInt() *big.Int {
	i := new(big.Int)
	pair := new(big.Int)

	for _, b := range x.value {
		i.Mul(i, hundred)
		i.Add(i, pair.SetUint64(unpack(b)))
	}

	return i
}

// FromBigInt returns b as an Int. Negative values and values needing more
// than MaxDigits digits are rejected.
func FromBigInt(b *big.Int) (x Int, err error) {
	if b.Sign() < 0 {
		return x, ParseError.New("negative value: %s", b)
	}

	if b.Cmp(limit) >= 0 {
		return x, Overflow.New("%s exceeds %d digits", b, MaxDigits)
	}

	q := new(big.Int).Set(b)
	m := new(big.Int)

	for i := size - 1; i >= 0 && q.Sign() > 0; i-- {
		q.QuoRem(q, hundred, m)
		x.value[i] = pack(m.Uint64())
	}

	return x, nil
}
