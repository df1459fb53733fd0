package emsh

import "errors"

// ErrIllegalSequence is returned by ParseUint when src does not start
// with a decimal digit.
var ErrIllegalSequence = errors.New("emsh: illegal numeric sequence")

// ErrRange is returned by ParseUint when the parsed value would exceed
// the caller-supplied maximum.
var ErrRange = errors.New("emsh: numeric value out of range")

// FormatUint writes the decimal representation of v into dst, without a
// terminator, and returns the number of bytes written. dst must be at
// least one byte long; the zero value formats as "0".
func FormatUint(dst []byte, v uint) int {
	if v == 0 {
		dst[0] = '0'
		return 1
	}
	var tmp [20]byte
	n := 0
	for v > 0 {
		tmp[n] = byte('0' + v%10)
		v /= 10
		n++
	}
	for i := 0; i < n; i++ {
		dst[i] = tmp[n-1-i]
	}
	return n
}

// ParseUint greedily consumes decimal digits at the start of src. It
// fails with ErrIllegalSequence when src starts with no digit, and with
// ErrRange when the parsed value would exceed max. consumed is always
// the number of digit bytes scanned, even on ErrRange.
func ParseUint(src []byte, max uint) (value uint, consumed int, err error) {
	if len(src) == 0 || !IsDigit(src[0]) {
		return 0, 0, wrapErr("parse uint", ErrIllegalSequence)
	}
	for consumed < len(src) && IsDigit(src[consumed]) {
		d := uint(src[consumed] - '0')
		if d > max || value > (max-d)/10 {
			for consumed < len(src) && IsDigit(src[consumed]) {
				consumed++
			}
			return 0, consumed, wrapErr("parse uint", ErrRange)
		}
		value = value*10 + d
		consumed++
	}
	return value, consumed, nil
}
