package lexer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type radix int

const (
	radixDecimal radix = iota
	radixHex
	radixBinary
)

// scanNumber slices a numeric lexeme off the cursor and parses it into a
// typed value. The first character (a digit, or '.' for forms like ".5")
// has already been consumed.
func (l *Lexer) scanNumber() error {
	r := radixDecimal
	if l.cur.Source()[l.start] == '0' {
		switch l.cur.Current() {
		case 'x', 'X':
			l.cur.Consume()
			if !isHexDigit(l.cur.Current()) && l.cur.Current() != '_' {
				return l.errorf(ErrMalformedNumber, "Invalid hex literal: expected hex digit after 0x")
			}
			r = radixHex
		case 'b':
			l.cur.Consume()
			r = radixBinary
		}
	}

	if err := l.readNumberBody(r); err != nil {
		return err
	}

	lexeme := l.cur.Source()[l.start:l.cur.Offset()]
	value, err := ParseNumericLiteral(lexeme)
	if err != nil {
		return l.errorf(ErrMalformedNumber, err.Error())
	}
	l.addTokenValue(NUMBER, value)
	return nil
}

// readNumberBody consumes the digit run, separators, at most the dots the
// grammar admits, and a terminating suffix. A '.' only belongs to the
// literal when followed by a letter or digit, so "5..10" lexes as three
// tokens.
func (l *Lexer) readNumberBody(r radix) error {
	for !l.cur.IsAtEnd() {
		c := l.cur.Current()
		switch {
		case c == '_':
			l.cur.Consume()
		case r == radixBinary && isDigit(c):
			if c > '1' {
				l.cur.Consume()
				return l.errorf(ErrMalformedNumber, fmt.Sprintf("Invalid digit %q in binary literal", c))
			}
			l.cur.Consume()
		case r == radixHex && isHexDigit(c):
			l.cur.Consume()
		case r == radixDecimal && isDigit(c):
			l.cur.Consume()
		case r == radixDecimal && c == '.' && (isLetter(l.cur.Peek(1)) || isDigit(l.cur.Peek(1))):
			l.cur.Consume()
		case isSuffixChar(c):
			l.cur.Consume()
			// ul and lu count as a two-character suffix pair
			next := l.cur.Current()
			if (c == 'u' || c == 'U') && (next == 'l' || next == 'L') {
				l.cur.Consume()
			} else if (c == 'l' || c == 'L') && (next == 'u' || next == 'U') {
				l.cur.Consume()
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSuffixChar(c byte) bool {
	switch c {
	case 'u', 'U', 'l', 'L', 'f', 'F', 'd', 'D', 'm', 'M':
		return true
	}
	return false
}

// ParseNumericLiteral converts a numeric lexeme into its typed value.
// Integers narrow to the first of int32, uint32, int64, uint64 that fits;
// overflow past uint64 is an error. Suffixes pick float32 (f), 128-bit
// decimal (m) or float64 (d, or a bare fractional literal).
func ParseNumericLiteral(lexeme string) (any, error) {
	s := strings.ToLower(lexeme)

	if strings.HasPrefix(s, "0x") {
		return parseIntegerDigits(lexeme, s[2:], 16)
	}
	if strings.HasPrefix(s, "0b") {
		return parseIntegerDigits(lexeme, s[2:], 2)
	}

	num, suffix := splitNumericSuffix(s)
	if strings.HasSuffix(num, "_") {
		return nil, errors.New("numeric literal has a trailing underscore")
	}
	num = strings.ReplaceAll(num, "_", "")
	if num == "" {
		return nil, errors.New("numeric literal has no digits")
	}
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	if strings.Count(num, ".") > 1 {
		return nil, errors.New("numeric literal has multiple fractional dots")
	}

	if !strings.Contains(num, ".") {
		switch suffix {
		case "", "u", "l", "ul", "lu":
			v, err := strconv.ParseUint(num, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("integer literal out of range: %s", lexeme)
			}
			return narrowInteger(v), nil
		}
	}

	switch suffix {
	case "f":
		v, err := strconv.ParseFloat(num, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal: %s", lexeme)
		}
		return float32(v), nil
	case "m":
		d, err := decimal.NewFromString(num)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal literal: %s", lexeme)
		}
		return d, nil
	case "", "d":
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal: %s", lexeme)
		}
		return v, nil
	}
	return nil, fmt.Errorf("invalid numeric suffix %q in %s", suffix, lexeme)
}

// parseIntegerDigits handles the hex and binary paths. Only the integer
// suffixes are stripped here; in hex literals f/d are digits, and any other
// suffix left on the digits (such as f/d/m after a binary literal) makes the
// parse fail.
func parseIntegerDigits(lexeme, digits string, base int) (any, error) {
	for _, suffix := range []string{"ul", "lu", "u", "l"} {
		if strings.HasSuffix(digits, suffix) {
			digits = strings.TrimSuffix(digits, suffix)
			break
		}
	}
	if strings.HasSuffix(digits, "_") {
		return nil, errors.New("numeric literal has a trailing underscore")
	}
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return nil, errors.New("numeric literal has no digits")
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer literal: %s", lexeme)
	}
	return narrowInteger(v), nil
}

func splitNumericSuffix(s string) (num, suffix string) {
	i := len(s)
	for i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
		i--
	}
	return s[:i], s[i:]
}

// narrowInteger picks the narrowest of int32, uint32, int64, uint64 that
// represents the value.
func narrowInteger(v uint64) any {
	switch {
	case v <= math.MaxInt32:
		return int32(v)
	case v <= math.MaxUint32:
		return uint32(v)
	case v <= math.MaxInt64:
		return int64(v)
	default:
		return v
	}
}
