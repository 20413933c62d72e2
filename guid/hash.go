package guid

import "strconv"

// FNV-1 parameters sized to the platform word, matching the widths used by
// native hash containers on 32- and 64-bit targets.
const (
	fnvOffsetBasis64 = 14695981039346656037
	fnvPrime64       = 1099511628211
	fnvOffsetBasis32 = 2166136261
	fnvPrime32       = 16777619
)

// Hash returns an FNV-1 hash accumulated over the 16 raw bytes of the
// structured value (not a variant-encoded form). The offset basis and prime
// are selected by the native integer width of the target.
func (g GUID) Hash() uint {
	if strconv.IntSize == 64 {
		return uint(g.hash64())
	}
	return uint(g.hash32())
}

func (g GUID) hash64() uint64 {
	var h uint64 = fnvOffsetBasis64
	for _, b := range g.rawBytes() {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

func (g GUID) hash32() uint32 {
	var h uint32 = fnvOffsetBasis32
	for _, b := range g.rawBytes() {
		h ^= uint32(b)
		h *= fnvPrime32
	}
	return h
}

// rawBytes lays the structured fields out in field order with no regard to
// machine byte order, so the hash of a value is stable across platforms of
// the same word size.
func (g GUID) rawBytes() [16]byte {
	var raw [16]byte
	raw[0] = uint8(g.Data1)
	raw[1] = uint8(g.Data1 >> 8)
	raw[2] = uint8(g.Data1 >> 16)
	raw[3] = uint8(g.Data1 >> 24)
	raw[4] = uint8(g.Data2)
	raw[5] = uint8(g.Data2 >> 8)
	raw[6] = uint8(g.Data3)
	raw[7] = uint8(g.Data3 >> 8)
	copy(raw[8:], g.Data4[:])
	return raw
}
