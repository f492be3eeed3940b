// Package exif implements decoding of EXIF data as defined in the EXIF 2.2
// specification, from JPEG files and from bare TIFF streams.
package exif

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/dsoprea/go-logging"

	"github.com/cul/imgprops/mknote"
	"github.com/cul/imgprops/tiff"
)

var exifLogger = log.NewLogger("exif")

// Keys of the TagMap that hold raw thumbnail bytes.
const (
	JPEGThumbnail = "JPEGThumbnail"
	TIFFThumbnail = "TIFFThumbnail"
)

const compressionNone = 1

// ErrNotRecognized is recorded in Exif.Warnings when the stream holds
// neither a TIFF header nor a JPEG EXIF segment.
var ErrNotRecognized = errors.New("exif: no EXIF data found")

// TagNotPresentError is returned by Get when the requested key was not
// decoded.
type TagNotPresentError string

func (tag TagNotPresentError) Error() string {
	return fmt.Sprintf("exif: tag %q is not present", string(tag))
}

// Options control a Decode call.
type Options struct {
	// StopTag ends each directory walk after the tag with this name.
	StopTag string
	// Details enables UserComment, MakerNote and maker note decoding.
	Details bool
	// Strict makes malformed directory entries fatal.
	Strict bool
}

// DefaultOptions returns detailed, lenient decoding with no stop tag.
func DefaultOptions() Options {
	return Options{StopTag: "UNDEF", Details: true}
}

// Exif holds the tags decoded from one stream.
type Exif struct {
	// Tags maps "<directory> <tag name>" to the decoded tag.
	Tags tiff.TagMap
	// Synthetic is set when the EXIF header sat behind leading JFIF-like
	// segments.
	Synthetic bool
	// Warnings collects the recoverable problems met while decoding, or nil.
	Warnings error
}

// Decode parses EXIF data from r. A stream without EXIF data is not an
// error: the result then holds only what a JFIF header provides and
// Warnings includes ErrNotRecognized. When a fatal error occurs after some
// tags were decoded, they are returned along with the error.
func Decode(r io.ReadSeeker, opts *Options) (*Exif, error) {
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}

	src, err := tiff.NewSource(r)
	if err != nil {
		return nil, err
	}
	c, err := locate(src)
	if err != nil {
		return nil, fmt.Errorf("exif: locating EXIF header failed: %w", err)
	}

	d := tiff.NewDecoder(src)
	d.StopTag = opts.StopTag
	d.Details = opts.Details
	d.Strict = opts.Strict

	x := &Exif{Tags: d.Tags, Synthetic: c.frame.Synthetic}
	if !c.found {
		exifLogger.Debugf(nil, "no EXIF header, keeping %d JFIF tags", len(c.seeds))
		d.Warn(ErrNotRecognized)
		x.Tags.MergeAbsent(c.seeds)
		x.Warnings = d.Warnings()
		return x, nil
	}

	err = decodeTIFF(d, c.frame, opts.Details)
	x.Tags.MergeAbsent(c.seeds)
	x.Warnings = d.Warnings()
	return x, err
}

func decodeTIFF(d *tiff.Decoder, f tiff.Frame, details bool) error {
	ifds, err := d.IFDs(f)
	if err != nil {
		return err
	}

	thumbIFD := int64(-1)
	for i, ifd := range ifds {
		var dir string
		switch i {
		case 0:
			dir = "Image"
		case 1:
			dir = "Thumbnail"
			thumbIFD = ifd
		default:
			dir = fmt.Sprintf("IFD %d", i)
		}
		if err := d.DumpIFD(f, ifd, dir, mainTags, false); err != nil {
			return err
		}
		if err := loadSubDirs(d, f, dir); err != nil {
			return err
		}
	}

	if thumbIFD >= 0 {
		loadThumbnail(d, f, thumbIFD)
	}

	var mnErr error
	note, hasNote := d.Tags["EXIF MakerNote"]
	mk, hasMake := d.Tags["Image Make"]
	if details && hasNote && hasMake {
		mnErr = mknote.Decode(d, f, note, mk.Printable())
	}

	// TIFF files may hide a JPEG thumbnail in the maker note since the
	// thumbnail IFD of an uncompressed TIFF cannot carry one.
	if _, ok := d.Tags[JPEGThumbnail]; !ok {
		if t, ok := d.Tags["MakerNote JPEGThumbnail"]; ok {
			n := int64(t.Count) * int64(t.Type.Size())
			b, err := d.ReadBlob(f, t.ValOffset, n)
			if err != nil {
				return err
			}
			d.Tags[JPEGThumbnail] = tiff.NewBlobTag(JPEGThumbnail, b)
		}
	}
	return mnErr
}

// loadSubDirs follows the EXIF, Interoperability and GPS pointers found in
// the directory dir.
func loadSubDirs(d *tiff.Decoder, f tiff.Frame, dir string) error {
	if off, ok := pointer(d, dir+" ExifOffset"); ok {
		if err := d.DumpIFD(f, off, "EXIF", mainTags, false); err != nil {
			return err
		}
		if off, ok := pointer(d, "EXIF InteroperabilityOffset"); ok {
			if err := d.DumpIFD(f, off, "EXIF Interoperability", interopTags, false); err != nil {
				return err
			}
		}
	}
	if off, ok := pointer(d, dir+" GPSInfo"); ok {
		if err := d.DumpIFD(f, off, "GPS", gpsTags, false); err != nil {
			return err
		}
	}
	return nil
}

func pointer(d *tiff.Decoder, key string) (int64, bool) {
	t, ok := d.Tags[key]
	if !ok {
		return 0, false
	}
	off, err := t.Int(0)
	if err != nil {
		d.Warn(fmt.Errorf("exif: %s has no offset: %w", key, err))
		return 0, false
	}
	if off < 0 {
		d.Warn(fmt.Errorf("exif: %s is negative: %d", key, off))
		return 0, false
	}
	return off, true
}

// intList returns the values of t up to the first one that is negative or
// not an integer.
func intList(t *tiff.Tag) []int64 {
	if t == nil {
		return nil
	}
	vals := make([]int64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		v, err := t.Int(i)
		if err != nil || v < 0 {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

// loadThumbnail stores the thumbnail of the IFD at ifd, either rebuilt as
// a standalone TIFF or copied as the embedded JPEG.
func loadThumbnail(d *tiff.Decoder, f tiff.Frame, ifd int64) {
	if ct, ok := d.Tags["Thumbnail Compression"]; ok {
		if v, err := ct.Int(0); err == nil && v == compressionNone {
			offsets := intList(d.Tags["Thumbnail StripOffsets"])
			counts := intList(d.Tags["Thumbnail StripByteCounts"])
			b, err := d.ExtractThumbnail(f, ifd, offsets, counts)
			if err != nil {
				d.Warn(fmt.Errorf("exif: TIFF thumbnail: %w", err))
				return
			}
			d.Tags[TIFFThumbnail] = tiff.NewBlobTag(TIFFThumbnail, b)
			return
		}
	}

	start, ok := pointer(d, "Thumbnail JPEGInterchangeFormat")
	if !ok {
		return
	}
	size, ok := pointer(d, "Thumbnail JPEGInterchangeFormatLength")
	if !ok {
		return
	}
	b, err := d.ReadBlob(f, start, size)
	if err != nil {
		d.Warn(fmt.Errorf("exif: JPEG thumbnail: %w", err))
		return
	}
	d.Tags[JPEGThumbnail] = tiff.NewBlobTag(JPEGThumbnail, b)
}

// Get retrieves the tag stored under key, such as "Image Make" or
// "EXIF DateTimeOriginal".
func (x *Exif) Get(key string) (*tiff.Tag, error) {
	if t, ok := x.Tags[key]; ok {
		return t, nil
	}
	return nil, TagNotPresentError(key)
}

// Walker is the interface used to traverse all tags of an Exif object.
type Walker interface {
	// Walk is called for each tag. Returning a non-nil error aborts the
	// walk and causes the error to be returned from Exif.Walk.
	Walk(key string, tag *tiff.Tag) error
}

// Walk calls w for every decoded tag in key order.
func (x *Exif) Walk(w Walker) error {
	for _, key := range x.keys() {
		if err := w.Walk(key, x.Tags[key]); err != nil {
			return err
		}
	}
	return nil
}

func (x *Exif) keys() []string {
	keys := make([]string, 0, len(x.Tags))
	for k := range x.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (x *Exif) thumbnail(key string) ([]byte, error) {
	t, err := x.Get(key)
	if err != nil {
		return nil, err
	}
	return t.Val, nil
}

// JPEGThumbnail returns the embedded JPEG thumbnail.
func (x *Exif) JPEGThumbnail() ([]byte, error) {
	return x.thumbnail(JPEGThumbnail)
}

// TIFFThumbnail returns the uncompressed thumbnail rebuilt as a single IFD
// TIFF file.
func (x *Exif) TIFFThumbnail() ([]byte, error) {
	return x.thumbnail(TIFFThumbnail)
}

// MarshalJSON implements the encoding/json.Marshaler interface. Thumbnail
// bytes are left out.
func (x Exif) MarshalJSON() ([]byte, error) {
	m := map[string]*tiff.Tag{}
	for k, t := range x.Tags {
		if k == JPEGThumbnail || k == TIFFThumbnail {
			continue
		}
		m[k] = t
	}
	return json.Marshal(m)
}

// String returns a pretty text representation of the decoded exif data.
func (x *Exif) String() string {
	var b strings.Builder
	for _, key := range x.keys() {
		fmt.Fprintf(&b, "%s: %s\n", key, x.Tags[key].Printable())
	}
	return b.String()
}
