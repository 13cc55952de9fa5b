package bcd

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the packed digits, MaxDigits/2 bytes with the most
// significant pair first.
func (x Int) MarshalBinary() (data []byte, err error) {
	data = make([]byte, size)
	copy(data, x.value[:])

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Every nibble is
// checked before x is modified.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) != size {
		return ParseError.New("len=%d want=%d", len(data), size)
	}

	for i, b := range data {
		if b>>4 > 9 || b&0x0f > 9 {
			return ParseError.Wrap(InvalidDigit.New("byte %d: %08b", i, b))
		}
	}

	copy(x.value[:], data)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a string
// since it may not fit in a float64.
func (x Int) MarshalJSON() (data []byte, err error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both strings and bare numbers
// made of digits are accepted. null leaves x unchanged.
func (x *Int) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	s := string(data)

	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}

	*x = v

	return nil
}
