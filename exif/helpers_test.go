package exif

import (
	"encoding/binary"
)

type entry struct {
	id    uint16
	typ   uint16
	count uint32
	val   []byte
	// ref, when set, points the entry at bytes already in the buffer
	// instead of storing val.
	ref uint32
}

// tiffBuilder lays out a TIFF stream directory by directory. Directories
// are appended in the order they are built, so children come before the
// parent that points at them.
type tiffBuilder struct {
	order binary.ByteOrder
	buf   []byte
}

func newTIFF(order binary.ByteOrder) *tiffBuilder {
	b := &tiffBuilder{order: order}
	if order == binary.LittleEndian {
		b.buf = []byte{'I', 'I', 0x2A, 0x00, 0, 0, 0, 0}
	} else {
		b.buf = []byte{'M', 'M', 0x00, 0x2A, 0, 0, 0, 0}
	}
	return b
}

func (b *tiffBuilder) blob(p []byte) uint32 {
	at := uint32(len(b.buf))
	b.buf = append(b.buf, p...)
	return at
}

// dir appends an IFD followed by its out-of-line values and returns its
// offset.
func (b *tiffBuilder) dir(next uint32, entries ...entry) uint32 {
	at := len(b.buf)
	dirLen := 2 + 12*len(entries) + 4
	dir := make([]byte, dirLen)
	var data []byte
	b.order.PutUint16(dir, uint16(len(entries)))
	for i, e := range entries {
		p := dir[2+12*i:]
		b.order.PutUint16(p[0:], e.id)
		b.order.PutUint16(p[2:], e.typ)
		count := e.count
		if count == 0 {
			count = uint32(len(e.val) / typeSize(e.typ))
		}
		b.order.PutUint32(p[4:], count)
		switch {
		case e.ref != 0:
			b.order.PutUint32(p[8:], e.ref)
		case len(e.val) <= 4:
			copy(p[8:12], e.val)
		default:
			b.order.PutUint32(p[8:], uint32(at+dirLen+len(data)))
			data = append(data, e.val...)
		}
	}
	b.order.PutUint32(dir[dirLen-4:], next)
	b.buf = append(b.buf, dir...)
	b.buf = append(b.buf, data...)
	return uint32(at)
}

// bytes sets the first IFD pointer and returns the stream.
func (b *tiffBuilder) bytes(first uint32) []byte {
	b.order.PutUint32(b.buf[4:], first)
	return b.buf
}

func typeSize(typ uint16) int {
	switch typ {
	case 3, 8:
		return 2
	case 4, 9, 11:
		return 4
	case 5, 10, 12:
		return 8
	}
	return 1
}

func (b *tiffBuilder) short(id uint16, vals ...uint16) entry {
	p := make([]byte, 2*len(vals))
	for i, v := range vals {
		b.order.PutUint16(p[2*i:], v)
	}
	return entry{id: id, typ: 3, val: p}
}

func (b *tiffBuilder) long(id uint16, vals ...uint32) entry {
	p := make([]byte, 4*len(vals))
	for i, v := range vals {
		b.order.PutUint32(p[4*i:], v)
	}
	return entry{id: id, typ: 4, val: p}
}

func (b *tiffBuilder) rational(id uint16, num, den uint32) entry {
	p := make([]byte, 8)
	b.order.PutUint32(p, num)
	b.order.PutUint32(p[4:], den)
	return entry{id: id, typ: 5, val: p}
}

func ascii(id uint16, s string) entry {
	return entry{id: id, typ: 2, val: append([]byte(s), 0)}
}

func undefined(id uint16, p []byte) entry {
	return entry{id: id, typ: 7, val: p}
}

// segment frames p as a JPEG marker segment.
func segment(marker byte, p []byte) []byte {
	n := len(p) + 2
	return append([]byte{0xFF, marker, byte(n >> 8), byte(n)}, p...)
}

func jfifSegment(units byte, xdens, ydens uint16) []byte {
	p := []byte("JFIF\x00\x01\x02")
	p = append(p, units, byte(xdens>>8), byte(xdens), byte(ydens>>8), byte(ydens), 0, 0)
	return segment(0xE0, p)
}

func exifSegment(tif []byte) []byte {
	return segment(0xE1, append([]byte("Exif\x00\x00"), tif...))
}

func jpeg(segments ...[]byte) []byte {
	b := []byte{0xFF, 0xD8}
	for _, s := range segments {
		b = append(b, s...)
	}
	// a little scan data, then EOI
	return append(b, 0xFF, 0xDA, 0x00, 0x04, 0x12, 0xFF, 0x00, 0x34, 0xFF, 0xD9)
}
