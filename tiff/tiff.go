// Package tiff implements the directory walking half of EXIF decoding: the
// field type table, typed tag values and the IFD walker shared by the main
// image directories and the vendor maker notes.
package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"

	log "github.com/dsoprea/go-logging"
	"github.com/hashicorp/go-multierror"
)

var ifdLogger = log.NewLogger("tiff.ifd")

// ErrTruncated marks a read that ran past the end of the source. The value
// read is zero filled and decoding continues.
var ErrTruncated = errors.New("tiff: read past end of data")

// MalformedTagError reports an IFD entry with a field type code outside the
// type table. It is only returned in strict mode.
type MalformedTagError struct {
	TagID     uint16
	FieldType uint16
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("tiff: unknown type %d in tag 0x%04X", e.FieldType, e.TagID)
}

// Tags skipped when detailed decoding is off: UserComment and MakerNote.
var ignoredTags = map[uint16]bool{
	0x9286: true,
	0x927C: true,
}

const (
	entrySize = 12
	// Values of more elements than this are not read, except for maker
	// notes which are re-walked later.
	maxValueCount = 1000
	// Extra correction for relative maker note pointers when the EXIF
	// header was synthesized behind JFIF-like segments.
	syntheticSkew = 18
)

// Frame fixes how offsets found in a directory are turned into positions in
// the source. A vendor that uses another byte order or another origin gets
// its own Frame; the caller's Frame is never changed.
type Frame struct {
	Order binary.ByteOrder
	// Base is the absolute position of the TIFF header that offsets are
	// measured from.
	Base int64
	// Synthetic is set when the EXIF header was reached behind leading
	// JFIF, JFXX, OLYM or Phot segments.
	Synthetic bool
}

// Rebase returns a copy of f with another byte order whose origin is moved
// by delta bytes.
func (f Frame) Rebase(order binary.ByteOrder, delta int64) Frame {
	return Frame{Order: order, Base: f.Base + delta, Synthetic: f.Synthetic}
}

// Decoder walks directories of one source and accumulates their tags. A
// Decoder is used by a single goroutine for one decode call.
type Decoder struct {
	src *Source

	// StopTag ends a directory walk after the tag with this display name.
	StopTag string
	// Details enables UserComment and MakerNote.
	Details bool
	// Strict turns malformed entries into errors instead of skipping them.
	Strict bool

	// Tags receives every decoded tag.
	Tags TagMap

	warnings *multierror.Error
}

// NewDecoder returns a Decoder over src with detailed, lenient decoding and
// no stop tag.
func NewDecoder(src *Source) *Decoder {
	return &Decoder{
		src:     src,
		StopTag: "UNDEF",
		Details: true,
		Tags:    TagMap{},
	}
}

// Source returns the source being decoded.
func (d *Decoder) Source() *Source {
	return d.src
}

// Warn records a recoverable problem.
func (d *Decoder) Warn(err error) {
	ifdLogger.Warningf(nil, "%s", err.Error())
	d.warnings = multierror.Append(d.warnings, err)
}

// Warnings returns the recoverable problems met so far, or nil.
func (d *Decoder) Warnings() error {
	return d.warnings.ErrorOrNil()
}

// read returns n bytes at off within f. Truncation is recorded as a warning
// and the zero filled bytes are returned.
func (d *Decoder) read(f Frame, off int64, n int) ([]byte, error) {
	b, err := d.src.ReadAt(f.Base+off, n)
	if errors.Is(err, ErrTruncated) {
		d.Warn(err)
		return b, nil
	}
	return b, err
}

func (d *Decoder) uint(f Frame, off int64, n int) (uint64, error) {
	b, err := d.read(f, off, n)
	if err != nil {
		return 0, err
	}
	return Uint(f.Order, b), nil
}

// ReadBlob reads up to n bytes at off within f, stopping at the end of the
// source. A negative offset or length yields an empty blob.
func (d *Decoder) ReadBlob(f Frame, off, n int64) ([]byte, error) {
	if off < 0 || n < 0 {
		d.Warn(fmt.Errorf("%w: blob of %d bytes at %d", ErrTruncated, n, off))
		return []byte{}, nil
	}
	if avail := d.src.Avail(f.Base + off); n > avail {
		d.Warn(fmt.Errorf("%w: blob of %d bytes at %d, %d available", ErrTruncated, n, off, avail))
		n = avail
	}
	b, err := d.src.ReadAt(f.Base+off, int(n))
	if errors.Is(err, ErrTruncated) {
		err = nil
	}
	return b, err
}

// readValue reads the n bytes of a tag value. When the source ends first,
// only the elements that start before the end are returned; the last one is
// zero filled.
func (d *Decoder) readValue(f Frame, off, n int64, elem int) ([]byte, error) {
	if avail := d.src.Avail(f.Base + off); n > avail {
		d.Warn(fmt.Errorf("%w: value of %d bytes at %d, %d available", ErrTruncated, n, off, avail))
		e := int64(elem)
		n = (avail + e - 1) / e * e
	}
	return d.read(f, off, int(n))
}

// FirstIFD returns the offset of the first IFD from the TIFF header.
func (d *Decoder) FirstIFD(f Frame) (int64, error) {
	off, err := d.uint(f, 4, 4)
	return int64(off), err
}

// NextIFD returns the offset of the IFD following the one at ifd, or 0.
func (d *Decoder) NextIFD(f Frame, ifd int64) (int64, error) {
	n, err := d.uint(f, ifd, 2)
	if err != nil {
		return 0, err
	}
	off, err := d.uint(f, ifd+2+entrySize*int64(n), 4)
	return int64(off), err
}

// IFDs lists the offsets of the IFD chain starting at the header. A chain
// that loops back on itself is cut at the first repeated offset.
func (d *Decoder) IFDs(f Frame) ([]int64, error) {
	var list []int64
	seen := map[int64]bool{}
	ifd, err := d.FirstIFD(f)
	for err == nil && ifd != 0 {
		if seen[ifd] {
			d.Warn(fmt.Errorf("tiff: IFD chain loops back to offset %d", ifd))
			break
		}
		if d.src.Avail(f.Base+ifd) == 0 {
			d.Warn(fmt.Errorf("%w: IFD offset %d", ErrTruncated, ifd))
			break
		}
		seen[ifd] = true
		list = append(list, ifd)
		ifd, err = d.NextIFD(f, ifd)
	}
	return list, err
}

// DumpIFD decodes the directory at offset ifd within f and stores each tag
// as "<dir> <name>" using dict for names. In relative mode out-of-line
// pointers are measured from the directory itself, as some Nikon maker
// notes do.
func (d *Decoder) DumpIFD(f Frame, ifd int64, dir string, dict Dict, relative bool) error {
	n, err := d.uint(f, ifd, 2)
	if err != nil {
		return err
	}
	if n == 0 {
		ifdLogger.Debugf(nil, "%s had zero entries", dir)
	}

	for i := 0; i < int(n); i++ {
		entry := ifd + 2 + entrySize*int64(i)
		raw, err := d.read(f, entry, entrySize)
		if err != nil {
			return err
		}

		id := uint16(Uint(f.Order, raw[0:2]))
		def := dict.Def(id)

		if d.Details || !ignoredTags[id] {
			typ := DataType(Uint(f.Order, raw[2:4]))
			if !typ.Valid() {
				merr := &MalformedTagError{TagID: id, FieldType: uint16(typ)}
				if d.Strict {
					return merr
				}
				d.Warn(fmt.Errorf("%s: %w", dir, merr))
				continue
			}

			count := uint32(Uint(f.Order, raw[4:8]))
			length := int64(typ.Size()) * int64(count)

			off := entry + 8
			if length > 4 {
				off = int64(Uint(f.Order, raw[8:12]))
				if relative {
					off += ifd - 8
					if f.Synthetic {
						off += syntheticSkew
					}
				}
			}

			var val []byte
			switch {
			case typ == DTAscii:
				if count != 0 && count < 1<<31 {
					val, err = d.readValue(f, off, int64(count), 1)
				}
			case count < maxValueCount || def.Name == "MakerNote":
				val, err = d.readValue(f, off, length, typ.Size())
			}
			if err != nil {
				return err
			}

			d.Tags[dir+" "+def.Name] = newTag(id, def, typ, count, off, val, f.Order)
		}

		if def.Name == d.StopTag {
			break
		}
	}
	return nil
}
