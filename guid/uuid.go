package guid

import (
	"github.com/google/uuid"
)

// New returns a fresh random (version 4) identifier. Generation defers to
// github.com/google/uuid so values interoperate with everything else that
// produces RFC 4122 identifiers.
func New() GUID {
	return FromUUID(uuid.New())
}

// FromUUID converts an ecosystem-native uuid.UUID into structured form.
// uuid.UUID is defined as the variant-1 byte layout, so this is exactly the
// variant-1 decoder.
func FromUUID(u uuid.UUID) GUID {
	g, err := DecodeVariant1(u[:])
	if err != nil {
		// unreachable: uuid.UUID is a [16]byte
		panic(err)
	}
	return g
}

// UUID converts g to the ecosystem-native uuid.UUID type via the variant-1
// encoding.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(EncodeVariant1(g))
}
