package pattern

// Predefined character classes used pervasively by catalogues: digits,
// letters, any byte. AnyByte is documented here because it departs from
// the source system's representation: that system stores byte bounds as
// a signed 8-bit type, so "any byte" is the signed interval [-128, 127].
// Go's byte is unsigned (uint8), so the equivalent full-coverage interval
// is simply [0, 255] — the same 256 values, different representation.

// Digit matches a single ASCII digit, [0-9].
func Digit() Pattern {
	return Interval('0', '9')
}

// LowerAlpha matches a single lowercase ASCII letter, [a-z].
func LowerAlpha() Pattern {
	return Interval('a', 'z')
}

// UpperAlpha matches a single uppercase ASCII letter, [A-Z].
func UpperAlpha() Pattern {
	return Interval('A', 'Z')
}

// Alpha matches a single ASCII letter of either case, [a-zA-Z].
func Alpha() Pattern {
	return Alt(LowerAlpha(), UpperAlpha())
}

// AlphaNumeric matches a single ASCII letter or digit, [a-zA-Z0-9].
func AlphaNumeric() Pattern {
	return Alt(Alpha(), Digit())
}

// AnyByte matches any single byte, [0x00, 0xFF].
func AnyByte() Pattern {
	return Interval(0, 255)
}
