package exif

import (
	"bytes"
	"encoding/binary"
	"errors"

	log "github.com/dsoprea/go-logging"

	"github.com/cul/imgprops/tiff"
)

var locateLogger = log.NewLogger("exif.locate")

const (
	markerPrefix = 0xFF
	markerAPP0   = 0xE0
	markerAPP1   = 0xE1
	markerAPP2   = 0xE2

	// initial scan window past the leading JFIF-like segments
	scanWindow = 8000
	// the TIFF header follows FFE1, the length and "Exif\0\0"
	exifHeaderSkip = 10
)

var (
	tiffBigEndian    = []byte{'M', 'M', 0x00, 0x2A}
	tiffLittleEndian = []byte{'I', 'I', 0x2A, 0x00}
	jpegSOI          = []byte{0xFF, 0xD8}

	// APPn identifiers that may precede the EXIF segment
	leadingSegments = []string{"JFIF", "JFXX", "OLYM", "Phot"}
)

// container is where the EXIF data lives in a stream.
type container struct {
	frame tiff.Frame
	// found is false when the stream holds no EXIF directory. seeds may
	// still be populated from a JFIF header.
	found bool
	seeds tiff.TagMap
}

// window is a prefix of the source that grows when a segment lies beyond it.
type window struct {
	src *tiff.Source
	buf []byte
}

func (w *window) ensure(n int) bool {
	if n <= len(w.buf) {
		return true
	}
	size := w.src.Size()
	if int64(len(w.buf)) >= size {
		return false
	}
	grow := 2 * len(w.buf)
	if grow < n {
		grow = n
	}
	if int64(grow) > size {
		grow = int(size)
	}
	buf, err := w.src.ReadAt(0, grow)
	if err != nil {
		return false
	}
	w.buf = buf
	return n <= len(w.buf)
}

func (w *window) segmentLen(at int) int {
	return int(binary.BigEndian.Uint16(w.buf[at+2:]))
}

// locate identifies the container of src and where its TIFF header starts.
func locate(src *tiff.Source) (container, error) {
	c := container{seeds: tiff.TagMap{}}

	head, err := src.ReadAt(0, 12)
	if err != nil && !errors.Is(err, tiff.ErrTruncated) {
		return c, err
	}

	switch {
	case bytes.Equal(head[:4], tiffBigEndian), bytes.Equal(head[:4], tiffLittleEndian):
		c.frame = tiff.Frame{Order: tiff.OrderOf(head[0])}
		c.found = true
		return c, nil
	case bytes.Equal(head[:2], jpegSOI):
		return locateJPEG(src, head, c)
	}
	return c, nil
}

func isLeadingSegment(b []byte) bool {
	for _, id := range leadingSegments {
		if string(b) == id {
			return true
		}
	}
	return false
}

// skipLeading returns the position of the first segment after the
// JFIF-like segments at the start of a JPEG, and whether there were any.
func skipLeading(src *tiff.Source, head []byte) (int, bool, error) {
	data, pos, skipped := head, 2, false
	for data[2] == markerPrefix && isLeadingSegment(data[6:10]) {
		length := int(data[4])<<8 | int(data[5])
		if length < 2 {
			break
		}
		pos += 2 + length
		b, err := src.ReadAt(int64(pos), 10)
		if err != nil && !errors.Is(err, tiff.ErrTruncated) {
			return pos, skipped, err
		}
		data = append([]byte{markerPrefix, 0x00}, b...)
		skipped = true
	}
	return pos, skipped, nil
}

func locateJPEG(src *tiff.Source, head []byte, c container) (container, error) {
	// an EXIF header found behind JFIF-like segments is synthetic
	pos, skipped, err := skipLeading(src, head)
	if err != nil {
		return c, err
	}
	c.frame.Synthetic = skipped

	w := &window{src: src}
	w.ensure(pos + scanWindow)

	anchor := -1
	fptr := 2
scan:
	for anchor < 0 && w.ensure(fptr+4) {
		marker := -1
		if w.buf[fptr] == markerPrefix {
			marker = int(w.buf[fptr+1])
		}

		switch marker {
		case markerAPP1:
			if w.ensure(fptr+8) && string(w.buf[fptr+4:fptr+8]) == "Exif" {
				anchor = fptr
				break scan
			}
			fptr += w.segmentLen(fptr) + 2
		case markerAPP2:
			fptr += w.segmentLen(fptr) + 2
		case markerAPP0:
			if w.ensure(fptr + 16) {
				jfifSeeds(w.buf, fptr, c.seeds)
			}
			fptr += w.segmentLen(fptr) + 2
		default:
			next := nextMarker(w.buf, fptr)
			if next < 0 {
				break scan
			}
			fptr = next
		}
	}

	if anchor < 0 {
		locateLogger.Debugf(nil, "no EXIF segment in JPEG, %d JFIF tags", len(c.seeds))
		return c, nil
	}

	start := int64(anchor + exifHeaderSkip)
	mark, err := src.ReadAt(start, 1)
	if err != nil && !errors.Is(err, tiff.ErrTruncated) {
		return c, err
	}
	c.frame.Order = tiff.OrderOf(mark[0])
	c.frame.Base = start
	c.found = true
	locateLogger.Debugf(nil, "EXIF header at %d (synthetic %v)", start, c.frame.Synthetic)
	return c, nil
}

// nextMarker returns the position of the next 0xFF after fptr that is not
// a stuffed 0xFF00 pair, or -1.
func nextMarker(buf []byte, fptr int) int {
	if len(buf) < fptr+2 {
		return -1
	}
	for i := fptr + 2; i+2 < len(buf); i++ {
		if buf[i] == markerPrefix && buf[i+1] != 0x00 {
			return i
		}
	}
	return -1
}

// jfifSeeds turns the density fields of the APP0 segment at off into
// ResolutionUnit, XResolution and YResolution tags.
func jfifSeeds(buf []byte, off int, seeds tiff.TagMap) {
	units := int64(buf[off+11])
	xdens := int64(binary.BigEndian.Uint16(buf[off+12:]))
	ydens := int64(binary.BigEndian.Uint16(buf[off+14:]))

	// JFIF counts units from 0 (none), EXIF from 1 (not absolute).
	seeds["Image ResolutionUnit"] = tiff.NewIntTag(0x0128, mainTags.Def(0x0128), tiff.DTShort, int64(off+11), units+1)
	seeds["Image XResolution"] = tiff.NewRatioTag(0x011A, mainTags.Def(0x011A), int64(off+12), tiff.Ratio{Num: xdens, Den: 1})
	seeds["Image YResolution"] = tiff.NewRatioTag(0x011B, mainTags.Def(0x011B), int64(off+14), tiff.Ratio{Num: ydens, Den: 1})
}
