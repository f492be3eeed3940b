package tiff

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

type entry struct {
	id    uint16
	typ   uint16
	count uint32
	val   []byte
}

// buildTIFF lays out a TIFF header, one IFD at offset 8 and the out-of-line
// values of its entries, in entry order.
func buildTIFF(order binary.ByteOrder, entries []entry, next uint32) []byte {
	b := header(order)
	dirLen := 2 + entrySize*len(entries) + 4
	data := []byte{}
	dir := make([]byte, dirLen)
	order.PutUint16(dir, uint16(len(entries)))
	for i, e := range entries {
		p := dir[2+entrySize*i:]
		order.PutUint16(p[0:], e.id)
		order.PutUint16(p[2:], e.typ)
		order.PutUint32(p[4:], e.count)
		if len(e.val) <= 4 {
			copy(p[8:12], e.val)
			continue
		}
		order.PutUint32(p[8:], uint32(8+dirLen+len(data)))
		data = append(data, e.val...)
	}
	order.PutUint32(dir[dirLen-4:], next)
	b = append(b, dir...)
	return append(b, data...)
}

func shorts(order binary.ByteOrder, vals ...uint16) []byte {
	b := make([]byte, 2*len(vals))
	for i, v := range vals {
		order.PutUint16(b[2*i:], v)
	}
	return b
}

func longs(order binary.ByteOrder, vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		order.PutUint32(b[4*i:], v)
	}
	return b
}

func unhex(s string) []byte {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		panic("invalid hex fixture")
	}
	return b
}
