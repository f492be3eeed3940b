package tiff

import "encoding/binary"

// Uint decodes the unsigned integer held in b, which must be 1, 2, 4 or 8
// bytes long.
func Uint(order binary.ByteOrder, b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	}
	panic("tiff: unsupported integer width")
}

// Int decodes b like Uint and sign extends the result from the width of b.
func Int(order binary.ByteOrder, b []byte) int64 {
	shift := 64 - 8*uint(len(b))
	return int64(Uint(order, b)<<shift) >> shift
}

// PutUint encodes v into b using the width of b (1, 2 or 4 bytes). Bits
// that do not fit are dropped.
func PutUint(order binary.ByteOrder, b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	default:
		panic("tiff: unsupported integer width")
	}
}

// OrderOf maps the first byte of a TIFF header to its byte order. Anything
// other than 'I' is treated as Motorola order.
func OrderOf(mark byte) binary.ByteOrder {
	if mark == 'I' {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
