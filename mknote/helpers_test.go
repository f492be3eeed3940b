package mknote

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/cul/imgprops/tiff"
)

type entry struct {
	id    uint16
	typ   uint16
	count uint32
	val   []byte
}

// builder appends directories to a buffer. Out-of-line values follow their
// directory and pointers are offsets into the buffer.
type builder struct {
	order binary.ByteOrder
	buf   []byte
}

func newBuilder(order binary.ByteOrder, prefix []byte) *builder {
	return &builder{order: order, buf: append([]byte(nil), prefix...)}
}

func tiffHeader(order binary.ByteOrder) []byte {
	b := []byte{'M', 'M', 0, 42, 0, 0, 0, 8}
	if order == binary.LittleEndian {
		b = []byte{'I', 'I', 42, 0, 8, 0, 0, 0}
	}
	return b
}

func (b *builder) dir(entries ...entry) uint32 {
	at := len(b.buf)
	dirLen := 2 + 12*len(entries) + 4
	dir := make([]byte, dirLen)
	var data []byte
	b.order.PutUint16(dir, uint16(len(entries)))
	for i, e := range entries {
		p := dir[2+12*i:]
		b.order.PutUint16(p[0:], e.id)
		b.order.PutUint16(p[2:], e.typ)
		b.order.PutUint32(p[4:], e.count)
		if len(e.val) <= 4 {
			copy(p[8:12], e.val)
			continue
		}
		b.order.PutUint32(p[8:], uint32(at+dirLen+len(data)))
		data = append(data, e.val...)
	}
	b.buf = append(b.buf, dir...)
	b.buf = append(b.buf, data...)
	return uint32(at)
}

func (b *builder) short(id uint16, vals ...uint16) entry {
	p := make([]byte, 2*len(vals))
	for i, v := range vals {
		b.order.PutUint16(p[2*i:], v)
	}
	return entry{id, 3, uint32(len(vals)), p}
}

func (b *builder) long(id uint16, vals ...uint32) entry {
	p := make([]byte, 4*len(vals))
	for i, v := range vals {
		b.order.PutUint32(p[4*i:], v)
	}
	return entry{id, 4, uint32(len(vals)), p}
}

func ascii(id uint16, s string) entry {
	return entry{id, 2, uint32(len(s) + 1), append([]byte(s), 0)}
}

func undefined(id uint16, p []byte) entry {
	return entry{id, 7, uint32(len(p)), p}
}

var exifDict = tiff.Dict{0x927C: {Name: "MakerNote"}}

// decodeNote wraps note in an EXIF directory at the end of b, decodes it and
// runs the maker note decoder for mk.
func decodeNote(t *testing.T, b *builder, noteAt uint32, mk string) (*tiff.Decoder, error) {
	t.Helper()
	size := uint32(len(b.buf)) - noteAt
	at := uint32(len(b.buf))
	dir := make([]byte, 2+12+4)
	b.order.PutUint16(dir, 1)
	b.order.PutUint16(dir[2:], 0x927C)
	b.order.PutUint16(dir[4:], 7)
	b.order.PutUint32(dir[6:], size)
	b.order.PutUint32(dir[10:], noteAt)
	b.buf = append(b.buf, dir...)

	src, err := tiff.NewSource(bytes.NewReader(b.buf))
	if err != nil {
		t.Fatal(err)
	}
	d := tiff.NewDecoder(src)
	f := tiff.Frame{Order: b.order}
	if err := d.DumpIFD(f, int64(at), "EXIF", exifDict, false); err != nil {
		t.Fatalf("EXIF directory: %v", err)
	}
	note, ok := d.Tags["EXIF MakerNote"]
	if !ok {
		t.Fatalf("maker note not decoded")
	}
	return d, Decode(d, f, note, mk)
}

func wantPrintable(t *testing.T, d *tiff.Decoder, key, want string) {
	t.Helper()
	tag, ok := d.Tags[key]
	if !ok {
		t.Errorf("%s missing", key)
		return
	}
	if got := tag.Printable(); got != want {
		t.Errorf("%s = %q, want %q", key, got, want)
	}
}
