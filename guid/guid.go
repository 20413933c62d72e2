// Package guid implements the 128-bit structured identifier used to name
// capabilities across module boundaries, with the canonical text form
// {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx} and both historical byte encodings.
//
// Values are held in a structured four-field representation, so all code that
// works on fields is independent of machine byte order. Byte-order questions
// only arise when serializing, and are answered explicitly by the variant-1
// and variant-2 codecs in this package rather than inferred from the variant
// nibble embedded in the value.
package guid

import (
	"fmt"
)

// GUID is a 128-bit identifier in structured form. The four fields are laid
// out contiguously with no padding; equality is bitwise (Go == works).
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Nil is the all-zero identifier.
var Nil GUID

// IsNil reports whether g is the all-zero identifier.
func (g GUID) IsNil() bool {
	return g == Nil
}

// Compare orders identifiers field by field (Data1, Data2, Data3, then a
// lexicographic compare of Data4). Because it never looks at raw encoded
// bytes, the order is the same on every machine regardless of endianness.
// It returns -1, 0, or +1.
func Compare(a, b GUID) int {
	switch {
	case a.Data1 < b.Data1:
		return -1
	case a.Data1 > b.Data1:
		return 1
	}
	switch {
	case a.Data2 < b.Data2:
		return -1
	case a.Data2 > b.Data2:
		return 1
	}
	switch {
	case a.Data3 < b.Data3:
		return -1
	case a.Data3 > b.Data3:
		return 1
	}
	for i := range a.Data4 {
		switch {
		case a.Data4[i] < b.Data4[i]:
			return -1
		case a.Data4[i] > b.Data4[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether g orders before other. See Compare.
func (g GUID) Less(other GUID) bool {
	return Compare(g, other) < 0
}

// ParseError reports why a textual identifier failed to parse and the byte
// offset within the input at which parsing failed.
type ParseError struct {
	Msg string
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("guid: %s at offset %d", e.Msg, e.Pos)
}

type parser struct {
	s   string
	pos int
}

func (p *parser) fail(msg string) *ParseError {
	return &ParseError{Msg: msg, Pos: p.pos}
}

func (p *parser) tryByte(c byte) bool {
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if !p.tryByte(c) {
		return p.fail("improperly formatted guid")
	}
	return nil
}

func (p *parser) halfByte() (uint8, error) {
	if p.pos >= len(p.s) {
		return 0, p.fail("improperly formatted guid")
	}
	c := p.s[p.pos]
	p.pos++
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	p.pos--
	return 0, p.fail("invalid hexadecimal character")
}

func (p *parser) byteVal() (uint8, error) {
	hi, err := p.halfByte()
	if err != nil {
		return 0, err
	}
	lo, err := p.halfByte()
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func (p *parser) uint16Val() (uint16, error) {
	hi, err := p.byteVal()
	if err != nil {
		return 0, err
	}
	lo, err := p.byteVal()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (p *parser) uint32Val() (uint32, error) {
	hi, err := p.uint16Val()
	if err != nil {
		return 0, err
	}
	lo, err := p.uint16Val()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// Parse reads an identifier of the form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx,
// optionally wrapped in braces. Hex digits may be upper or lower case. On
// failure it returns a *ParseError carrying the offending byte offset; the
// input is rejected for short groups, missing hyphens, invalid hex digits, an
// unbalanced opening brace, or trailing characters.
func Parse(s string) (GUID, error) {
	p := &parser{s: s}
	braced := p.tryByte('{')

	var g GUID
	var err error
	if g.Data1, err = p.uint32Val(); err != nil {
		return Nil, err
	}
	if err = p.expect('-'); err != nil {
		return Nil, err
	}
	if g.Data2, err = p.uint16Val(); err != nil {
		return Nil, err
	}
	if err = p.expect('-'); err != nil {
		return Nil, err
	}
	if g.Data3, err = p.uint16Val(); err != nil {
		return Nil, err
	}
	if err = p.expect('-'); err != nil {
		return Nil, err
	}
	for i := 0; i < 8; i++ {
		if i == 2 {
			if err = p.expect('-'); err != nil {
				return Nil, err
			}
		}
		if g.Data4[i], err = p.byteVal(); err != nil {
			return Nil, err
		}
	}
	if braced {
		if err = p.expect('}'); err != nil {
			return Nil, p.fail("unbalanced brace")
		}
	}
	if p.pos != len(s) {
		return Nil, p.fail("trailing characters after guid")
	}
	return g, nil
}

// MustParse is Parse for well-known identifier constants; it panics on any
// parse failure. Misuse is a build-time defect, not a runtime condition.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

const hexDigits = "0123456789abcdef"

func putHexByte(dst []byte, b uint8) {
	dst[0] = hexDigits[b>>4]
	dst[1] = hexDigits[b&0xf]
}

// String formats g in the canonical form: always braced, always lowercase,
// fixed-width zero-padded groups. The result is exactly 38 bytes.
func (g GUID) String() string {
	var out [38]byte
	out[0] = '{'
	putHexByte(out[1:], uint8(g.Data1>>24))
	putHexByte(out[3:], uint8(g.Data1>>16))
	putHexByte(out[5:], uint8(g.Data1>>8))
	putHexByte(out[7:], uint8(g.Data1))
	out[9] = '-'
	putHexByte(out[10:], uint8(g.Data2>>8))
	putHexByte(out[12:], uint8(g.Data2))
	out[14] = '-'
	putHexByte(out[15:], uint8(g.Data3>>8))
	putHexByte(out[17:], uint8(g.Data3))
	out[19] = '-'
	putHexByte(out[20:], g.Data4[0])
	putHexByte(out[22:], g.Data4[1])
	out[24] = '-'
	for i := 2; i < 8; i++ {
		putHexByte(out[25+(i-2)*2:], g.Data4[i])
	}
	out[37] = '}'
	return string(out[:])
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it accepts anything
// Parse accepts.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
