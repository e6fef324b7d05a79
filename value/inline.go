package value

import "encoding/binary"

// inlineCapacity is the maximum number of bytes an inline string or
// bigint magnitude can carry directly in a Value's 8-byte payload:
// one byte of payload is reserved for the length, leaving 7 bytes of
// data (spec.md §3: "a small inline string of up to 7 bytes").
const inlineCapacity = 7

// InlineString packs s directly into a Value's payload when it fits
// in inlineCapacity bytes. ok is false when s is too long and must
// instead be allocated through the agent as a heap-backed String
// record.
func InlineString(s string) (v Value, ok bool) {
	if len(s) > inlineCapacity {
		return Value{}, false
	}
	var buf [8]byte
	buf[0] = byte(len(s))
	copy(buf[1:], s)
	return Value{tag: TagInlineString, payload: binary.LittleEndian.Uint64(buf[:])}, true
}

// IsInlineString reports whether v carries an inline string payload.
func (v Value) IsInlineString() bool { return v.tag == TagInlineString }

// AsInlineString decodes the inline string payload. Only meaningful
// when IsInlineString is true.
func (v Value) AsInlineString() string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.payload)
	n := int(buf[0])
	if n > inlineCapacity {
		n = inlineCapacity
	}
	return string(buf[1 : 1+n])
}

// InlineBigInt packs a magnitude that fits in inlineCapacity bytes
// plus a sign bit. ok is false when the magnitude is too large and
// must instead be allocated as a heap-backed BigInt record.
func InlineBigInt(negative bool, magnitudeLE []byte) (v Value, ok bool) {
	if len(magnitudeLE) > inlineCapacity {
		return Value{}, false
	}
	var buf [8]byte
	buf[0] = byte(len(magnitudeLE))
	if negative {
		buf[0] |= 0x80
	}
	copy(buf[1:], magnitudeLE)
	return Value{tag: TagInlineBigInt, payload: binary.LittleEndian.Uint64(buf[:])}, true
}

// IsInlineBigInt reports whether v carries an inline bigint payload.
func (v Value) IsInlineBigInt() bool { return v.tag == TagInlineBigInt }

// AsInlineBigInt decodes the inline bigint payload into its sign and
// little-endian magnitude bytes. Only meaningful when IsInlineBigInt
// is true.
func (v Value) AsInlineBigInt() (negative bool, magnitudeLE []byte) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.payload)
	negative = buf[0]&0x80 != 0
	n := int(buf[0] &^ 0x80)
	if n > inlineCapacity {
		n = inlineCapacity
	}
	magnitudeLE = append([]byte(nil), buf[1:1+n]...)
	return negative, magnitudeLE
}
