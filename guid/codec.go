package guid

import (
	"errors"
)

// EncodedLen is the size of both binary encodings.
const EncodedLen = 16

// ErrShortEncoding is returned by the decoders for inputs that are not
// exactly EncodedLen bytes.
var ErrShortEncoding = errors.New("guid: encoded form must be 16 bytes")

// EncodeVariant1 serializes g with the three leading fields most-significant
// byte first and the tail copied verbatim. This is the layout assumed by
// libuuid, boost-uuid, and github.com/google/uuid, regardless of the variant
// nibble actually embedded in the value.
func EncodeVariant1(g GUID) [EncodedLen]byte {
	var u [EncodedLen]byte
	u[0] = uint8(g.Data1 >> 24)
	u[1] = uint8(g.Data1 >> 16)
	u[2] = uint8(g.Data1 >> 8)
	u[3] = uint8(g.Data1)

	u[4] = uint8(g.Data2 >> 8)
	u[5] = uint8(g.Data2)

	u[6] = uint8(g.Data3 >> 8)
	u[7] = uint8(g.Data3)

	copy(u[8:], g.Data4[:])
	return u
}

// DecodeVariant1 is the inverse of EncodeVariant1.
func DecodeVariant1(u []byte) (GUID, error) {
	if len(u) != EncodedLen {
		return Nil, ErrShortEncoding
	}
	var g GUID
	g.Data1 = uint32(u[0])<<24 | uint32(u[1])<<16 | uint32(u[2])<<8 | uint32(u[3])
	g.Data2 = uint16(u[4])<<8 | uint16(u[5])
	g.Data3 = uint16(u[6])<<8 | uint16(u[7])
	copy(g.Data4[:], u[8:])
	return g, nil
}

// EncodeVariant2 serializes g with the three leading fields least-significant
// byte first and the tail copied verbatim. This matches the historical
// in-memory layout of a structured value on a little-endian machine, and is
// needed when that convention must be preserved on the wire.
func EncodeVariant2(g GUID) [EncodedLen]byte {
	var u [EncodedLen]byte
	u[0] = uint8(g.Data1)
	u[1] = uint8(g.Data1 >> 8)
	u[2] = uint8(g.Data1 >> 16)
	u[3] = uint8(g.Data1 >> 24)

	u[4] = uint8(g.Data2)
	u[5] = uint8(g.Data2 >> 8)

	u[6] = uint8(g.Data3)
	u[7] = uint8(g.Data3 >> 8)

	copy(u[8:], g.Data4[:])
	return u
}

// DecodeVariant2 is the inverse of EncodeVariant2.
func DecodeVariant2(u []byte) (GUID, error) {
	if len(u) != EncodedLen {
		return Nil, ErrShortEncoding
	}
	var g GUID
	g.Data1 = uint32(u[0]) | uint32(u[1])<<8 | uint32(u[2])<<16 | uint32(u[3])<<24
	g.Data2 = uint16(u[4]) | uint16(u[5])<<8
	g.Data3 = uint16(u[6]) | uint16(u[7])<<8
	copy(g.Data4[:], u[8:])
	return g, nil
}
