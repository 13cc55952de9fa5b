package bcd_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bcd/bcd"
)

func TestDigit(t *testing.T) {
	t.Run("subscript", func(t *testing.T) {
		var x bcd.Int

		require.NoError(t, x.SetDigit(0, 1))
		require.NoError(t, x.SetDigit(1, 2))
		requireDigit(t, x, 0, 1)
		requireDigit(t, x, 1, 2)

		require.NoError(t, x.SetDigit(0, 3))
		requireDigit(t, x, 0, 3)
		requireDigit(t, x, 1, 2)

		require.NoError(t, x.SetDigit(1, 4))
		requireDigit(t, x, 0, 3)
		requireDigit(t, x, 1, 4)

		require.Equal(t, "43", x.String())
	})

	t.Run("isolation", func(t *testing.T) {
		base := bcd.MustParse("10987654321098765432109876543210")

		for i := 0; i < bcd.MaxDigits; i++ {
			for v := uint8(0); v <= 9; v++ {
				x := base
				require.NoError(t, x.SetDigit(i, v))

				for j := 0; j < bcd.MaxDigits; j++ {
					want := uint8(j % 10)
					if j == i {
						want = v
					}

					requireDigit(t, x, j, want)
				}
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		x := bcd.MustParse("10987654321098765432109876543210")
		before := x

		for i := 0; i < bcd.MaxDigits; i++ {
			for _, v := range []uint8{10, 15, 255} {
				err := x.SetDigit(i, v)
				require.Error(t, err)
				require.True(t, bcd.InvalidDigit.Has(err), "%+v", err)
				require.Equal(t, before, x)
			}
		}
	})

	t.Run("bounds", func(t *testing.T) {
		var x bcd.Int

		for _, i := range []int{-1, bcd.MaxDigits, bcd.MaxDigits + 1} {
			t.Run(fmt.Sprint(i), func(t *testing.T) {
				_, err := x.Digit(i)
				require.True(t, bcd.IndexOutOfRange.Has(err), "%+v", err)

				err = x.SetDigit(i, 0)
				require.True(t, bcd.IndexOutOfRange.Has(err), "%+v", err)

				_, err = x.At(i)
				require.True(t, bcd.IndexOutOfRange.Has(err), "%+v", err)
			})
		}

		require.True(t, x.IsZero())
	})
}

func TestCursor(t *testing.T) {
	var x bcd.Int

	lo, err := x.At(4)
	require.NoError(t, err)

	hi, err := x.At(5)
	require.NoError(t, err)

	require.Equal(t, uint8(0), lo.Get())
	require.Equal(t, uint8(0), hi.Get())

	for v := uint8(0); v <= 9; v++ {
		require.NoError(t, lo.Set(v))
		require.NoError(t, hi.Set(9-v))

		require.Equal(t, v, lo.Get())
		require.Equal(t, 9-v, hi.Get())
		requireDigit(t, x, 4, v)
		requireDigit(t, x, 5, 9-v)
	}

	// Writes through the Int are visible to the cursor.
	require.NoError(t, x.SetDigit(4, 7))
	require.Equal(t, uint8(7), lo.Get())

	err = lo.Set(10)
	require.True(t, bcd.InvalidDigit.Has(err), "%+v", err)
	require.Equal(t, uint8(7), lo.Get())
	require.Equal(t, uint8(0), hi.Get())

	require.Equal(t, "70000", x.String())
}

func requireDigit(t *testing.T, x bcd.Int, i int, want uint8) {
	t.Helper()

	d, err := x.Digit(i)
	require.NoError(t, err)
	require.Equal(t, want, d, "digit %d of %s", i, x)
}
