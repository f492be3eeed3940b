package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const tagStripOffsets = 0x0111

// ErrNoStrips is returned when a thumbnail directory has no usable
// StripOffsets entry.
var ErrNoStrips = errors.New("tiff: thumbnail has no strip offsets")

func header(order binary.ByteOrder) []byte {
	b := make([]byte, 8)
	if order == binary.LittleEndian {
		copy(b, "II")
	} else {
		copy(b, "MM")
	}
	order.PutUint16(b[2:], 42)
	order.PutUint32(b[4:], 8)
	return b
}

// ExtractThumbnail rebuilds the directory at ifd as a self-contained TIFF
// holding one IFD. Entries are copied verbatim, out-of-line values are moved
// behind the directory with their pointers fixed up, and the image strips
// given by offsets and counts are appended with StripOffsets rewritten to
// match.
func (d *Decoder) ExtractThumbnail(f Frame, ifd int64, offsets, counts []int64) ([]byte, error) {
	n, err := d.uint(f, ifd, 2)
	if err != nil {
		return nil, err
	}
	dir, err := d.read(f, ifd, 2+entrySize*int(n))
	if err != nil {
		return nil, err
	}

	out := header(f.Order)
	out = append(out, dir...)
	out = append(out, 0, 0, 0, 0)

	stripSlot, stripWidth := -1, 0
	for i := 0; i < int(n); i++ {
		e := dir[2+entrySize*i:]
		tag := uint16(Uint(f.Order, e[0:2]))
		typ := DataType(Uint(f.Order, e[2:4]))
		count := int64(Uint(f.Order, e[4:8]))
		length := int64(typ.Size()) * count
		// position of the entry's value field in out
		ptr := 8 + 2 + entrySize*i + 8

		if tag == tagStripOffsets {
			stripSlot, stripWidth = ptr, typ.Size()
		}
		if length <= 4 {
			continue
		}

		newOff := len(out)
		PutUint(f.Order, out[ptr:ptr+4], uint64(newOff))
		if tag == tagStripOffsets {
			stripSlot = newOff
		}
		data, err := d.ReadBlob(f, int64(Uint(f.Order, e[8:12])), length)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}

	if stripSlot < 0 || (stripWidth != 2 && stripWidth != 4) {
		return nil, ErrNoStrips
	}

	for i, off := range offsets {
		if i >= len(counts) {
			d.Warn(fmt.Errorf("tiff: thumbnail strip %d has no byte count", i))
			break
		}
		slot := stripSlot + i*stripWidth
		if slot+stripWidth > len(out) {
			d.Warn(fmt.Errorf("%w: thumbnail strip offset %d", ErrTruncated, i))
			break
		}
		if stripWidth == 2 && len(out) > 0xFFFF {
			return nil, fmt.Errorf("tiff: thumbnail strip %d offset %d overflows a short", i, len(out))
		}
		PutUint(f.Order, out[slot:slot+stripWidth], uint64(len(out)))
		strip, err := d.ReadBlob(f, off, counts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, strip...)
	}
	return out, nil
}
