package exif

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/cul/imgprops/tiff"
)

func decodeBytes(t *testing.T, b []byte, opts *Options) *Exif {
	t.Helper()
	x, err := Decode(bytes.NewReader(b), opts)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return x
}

func wantPrintable(t *testing.T, x *Exif, key, want string) {
	t.Helper()
	tag, err := x.Get(key)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if got := tag.Printable(); got != want {
		t.Errorf("%s = %q, want %q", key, got, want)
	}
}

func TestDecodeByteOrder(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			b := newTIFF(order)
			ifd := b.dir(0, b.short(0x0100, 100))
			x := decodeBytes(t, b.bytes(ifd), nil)

			tag, err := x.Get("Image ImageWidth")
			if err != nil {
				t.Fatal(err)
			}
			if v, err := tag.Int(0); err != nil || v != 100 || tag.Len() != 1 {
				t.Errorf("ImageWidth = %v (%v), want [100]", v, err)
			}
			if x.Synthetic {
				t.Errorf("bare TIFF reported a synthetic header")
			}
			if x.Warnings != nil {
				t.Errorf("unexpected warnings: %v", x.Warnings)
			}
		})
	}
}

func TestDecodeSubDirectories(t *testing.T) {
	b := newTIFF(binary.BigEndian)
	interop := b.dir(0, ascii(0x0001, "R98"))
	exif := b.dir(0,
		b.rational(0x829A, 2, 500),
		b.long(0xA005, interop),
	)
	gps := b.dir(0,
		undefined(0x0000, []byte{2, 2, 0, 0}),
		ascii(0x0001, "N"),
		b.short(0x0005, 1),
	)
	ifd0 := b.dir(0,
		ascii(0x010F, "TestCam"),
		b.long(0x8769, exif),
		b.long(0x8825, gps),
	)
	x := decodeBytes(t, b.bytes(ifd0), nil)

	wantPrintable(t, x, "Image Make", "TestCam")
	wantPrintable(t, x, "EXIF ExposureTime", "1/250")
	wantPrintable(t, x, "EXIF Interoperability InteroperabilityIndex", "R98")
	wantPrintable(t, x, "GPS GPSLatitudeRef", "N")
	wantPrintable(t, x, "GPS GPSAltitudeRef", "Below Sea Level")
	wantPrintable(t, x, "GPS GPSVersionID", "[2, 2, 0, 0]")
}

func TestDecodeIFDChainNames(t *testing.T) {
	b := newTIFF(binary.LittleEndian)
	third := b.dir(0, b.short(0x0100, 3))
	thumb := b.dir(third, b.short(0x0100, 2))
	ifd0 := b.dir(thumb, b.short(0x0100, 1))
	x := decodeBytes(t, b.bytes(ifd0), nil)

	wantPrintable(t, x, "Image ImageWidth", "1")
	wantPrintable(t, x, "Thumbnail ImageWidth", "2")
	wantPrintable(t, x, "IFD 2 ImageWidth", "3")
}

func TestDecodeJPEGThumbnail(t *testing.T) {
	thumb := []byte{0xFF, 0xD8, 1, 2, 3, 4, 5, 0xFF, 0xD9}
	b := newTIFF(binary.BigEndian)
	at := b.blob(thumb)
	ifd1 := b.dir(0,
		b.short(0x0103, 6),
		b.long(0x0201, at),
		b.long(0x0202, uint32(len(thumb))),
	)
	ifd0 := b.dir(ifd1, b.short(0x0100, 640))
	x := decodeBytes(t, b.bytes(ifd0), nil)

	got, err := x.JPEGThumbnail()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, thumb) {
		t.Errorf("thumbnail = % X", got)
	}
	wantPrintable(t, x, "Thumbnail Compression", "JPEG (old-style)")
	wantPrintable(t, x, JPEGThumbnail, "9 bytes")
	if _, err := x.TIFFThumbnail(); err == nil {
		t.Errorf("compressed thumbnail produced a TIFF thumbnail")
	}
}

func TestDecodeTIFFThumbnail(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6}
	b := newTIFF(binary.LittleEndian)
	strip := b.blob(pixels)
	ifd1 := b.dir(0,
		b.short(0x0100, 2),
		b.short(0x0101, 1),
		b.short(0x0103, 1),
		b.long(0x0111, strip),
		b.long(0x0117, uint32(len(pixels))),
	)
	ifd0 := b.dir(ifd1, b.short(0x0100, 640))
	x := decodeBytes(t, b.bytes(ifd0), nil)

	got, err := x.TIFFThumbnail()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(got, []byte{'I', 'I', 0x2A, 0x00, 8, 0, 0, 0}) {
		t.Errorf("thumbnail header = % X", got[:8])
	}
	if !bytes.HasSuffix(got, pixels) {
		t.Errorf("thumbnail does not end with the strip: % X", got)
	}
}

func TestDecodeJPEG(t *testing.T) {
	tb := newTIFF(binary.BigEndian)
	ifd0 := tb.dir(0,
		tb.short(0x0100, 800),
		tb.rational(0x011A, 300, 1),
	)
	icc := segment(0xE2, []byte("ICC_PROFILE\x00\x01\x01 not much of a profile"))
	img := jpeg(jfifSegment(1, 72, 96), icc, exifSegment(tb.bytes(ifd0)))

	x := decodeBytes(t, img, nil)
	if !x.Synthetic {
		t.Errorf("EXIF behind a JFIF segment should be synthetic")
	}
	wantPrintable(t, x, "Image ImageWidth", "800")
	// EXIF values win over the JFIF header, which fills in the rest
	wantPrintable(t, x, "Image XResolution", "300")
	wantPrintable(t, x, "Image YResolution", "96")
	wantPrintable(t, x, "Image ResolutionUnit", "Pixels/Inch")
}

func TestDecodeJFIFOnly(t *testing.T) {
	x := decodeBytes(t, jpeg(jfifSegment(1, 72, 72)), nil)

	if !x.Synthetic {
		t.Errorf("JFIF header not reported as synthetic")
	}
	wantPrintable(t, x, "Image ResolutionUnit", "Pixels/Inch")
	wantPrintable(t, x, "Image XResolution", "72")
	wantPrintable(t, x, "Image YResolution", "72")
	if len(x.Tags) != 3 {
		t.Errorf("got %d tags, want the 3 JFIF ones", len(x.Tags))
	}
	if !errors.Is(x.Warnings, ErrNotRecognized) {
		t.Errorf("warnings = %v, want ErrNotRecognized", x.Warnings)
	}
}

func TestDecodeNotRecognized(t *testing.T) {
	for _, in := range []string{"", "GIF89a not an exif container", "\xFF\xD8\xFF\xDB\x00\x04\x00\x00"} {
		x := decodeBytes(t, []byte(in), nil)
		if len(x.Tags) != 0 {
			t.Errorf("%q: got tags %v", in, x.Tags)
		}
		if !errors.Is(x.Warnings, ErrNotRecognized) {
			t.Errorf("%q: warnings = %v", in, x.Warnings)
		}
	}
}

func TestDecodeOptions(t *testing.T) {
	b := newTIFF(binary.BigEndian)
	exif := b.dir(0,
		undefined(0x9286, []byte("ASCII\x00\x00\x00hello")),
		undefined(0x927C, []byte("no known vendor")),
	)
	ifd0 := b.dir(0,
		b.short(0x0100, 640),
		b.short(0x0101, 480),
		b.short(0x0112, 6),
		b.long(0x8769, exif),
	)
	img := b.bytes(ifd0)

	t.Run("defaults", func(t *testing.T) {
		x := decodeBytes(t, img, nil)
		wantPrintable(t, x, "Image Orientation", "Rotated 90 CW")
		wantPrintable(t, x, "EXIF UserComment", "hello")
		if _, err := x.Get("EXIF MakerNote"); err != nil {
			t.Error(err)
		}
	})

	t.Run("stop tag", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StopTag = "ImageLength"
		x := decodeBytes(t, img, &opts)
		if _, err := x.Get("Image ImageLength"); err != nil {
			t.Error(err)
		}
		var nerr TagNotPresentError
		if _, err := x.Get("Image Orientation"); !errors.As(err, &nerr) {
			t.Errorf("Orientation after the stop tag: %v", err)
		}
	})

	t.Run("fast", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Details = false
		x := decodeBytes(t, img, &opts)
		for _, key := range []string{"EXIF UserComment", "EXIF MakerNote"} {
			if _, err := x.Get(key); err == nil {
				t.Errorf("%s decoded without details", key)
			}
		}
	})
}

func TestDecodeStrict(t *testing.T) {
	b := newTIFF(binary.BigEndian)
	ifd0 := b.dir(0,
		b.short(0x0100, 640),
		entry{id: 0x0101, typ: 255, count: 1},
		b.short(0x0112, 1),
	)
	img := b.bytes(ifd0)

	x := decodeBytes(t, img, nil)
	if _, err := x.Get("Image ImageLength"); err == nil {
		t.Errorf("malformed entry decoded in lenient mode")
	}
	wantPrintable(t, x, "Image Orientation", "Horizontal (normal)")

	opts := DefaultOptions()
	opts.Strict = true
	x, err := Decode(bytes.NewReader(img), &opts)
	var merr *tiff.MalformedTagError
	if !errors.As(err, &merr) || merr.FieldType != 255 {
		t.Fatalf("got %v, want a MalformedTagError", err)
	}
	if x == nil {
		t.Fatalf("no partial result returned")
	}
	wantPrintable(t, x, "Image ImageWidth", "640")
}

func TestDecodeCanonMakerNote(t *testing.T) {
	b := newTIFF(binary.BigEndian)
	note := b.dir(0,
		b.short(0x0001, 10, 1, 0, 3),
		b.short(0x0004, 16, 0, 0, 0, 0, 0, 0, 1),
		b.long(0x0008, 1234567),
	)
	size := uint32(len(b.buf)) - note
	exif := b.dir(0, entry{id: 0x927C, typ: 7, count: size, ref: note})
	ifd0 := b.dir(0, ascii(0x010F, "Canon"), b.long(0x8769, exif))
	x := decodeBytes(t, b.bytes(ifd0), nil)

	wantPrintable(t, x, "MakerNote ImageNumber", "1234567")
	wantPrintable(t, x, "MakerNote Macromode", "Macro")
	wantPrintable(t, x, "MakerNote SelfTimer", "0")
	wantPrintable(t, x, "MakerNote Quality", "Fine")
	wantPrintable(t, x, "MakerNote WhiteBalance", "Sunny")
}

func TestExifOutput(t *testing.T) {
	thumb := []byte{0xFF, 0xD8, 0xFF, 0xD9}
	b := newTIFF(binary.LittleEndian)
	at := b.blob(thumb)
	ifd1 := b.dir(0, b.long(0x0201, at), b.long(0x0202, uint32(len(thumb))))
	ifd0 := b.dir(ifd1, b.short(0x0100, 640), ascii(0x010F, "Maker"))
	x := decodeBytes(t, b.bytes(ifd0), nil)

	var keys []string
	err := x.Walk(walkFunc(func(key string, tag *tiff.Tag) error {
		keys = append(keys, key)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := "Image ImageWidth,Image Make,JPEGThumbnail,Thumbnail JPEGInterchangeFormat,Thumbnail JPEGInterchangeFormatLength"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("walk order = %s", got)
	}

	data, err := json.Marshal(x)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if _, ok := m[JPEGThumbnail]; ok {
		t.Errorf("thumbnail bytes in JSON output")
	}
	if got := string(m["Image Make"]); got != `"Maker"` {
		t.Errorf("Image Make marshalled as %s", got)
	}

	if s := x.String(); !strings.Contains(s, "Image ImageWidth: 640\n") {
		t.Errorf("String() = %q", s)
	}
}

type walkFunc func(key string, tag *tiff.Tag) error

func (f walkFunc) Walk(key string, tag *tiff.Tag) error {
	return f(key, tag)
}

func TestDecodeNegativeThumbnailLengths(t *testing.T) {
	t.Run("jpeg", func(t *testing.T) {
		b := newTIFF(binary.BigEndian)
		at := b.blob([]byte{0xFF, 0xD8, 0xFF, 0xD9})
		ifd1 := b.dir(0,
			b.long(0x0201, at),
			entry{id: 0x0202, typ: 9, val: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		)
		ifd0 := b.dir(ifd1, b.short(0x0100, 640))
		x := decodeBytes(t, b.bytes(ifd0), nil)

		if _, err := x.JPEGThumbnail(); err == nil {
			t.Errorf("thumbnail of negative length was stored")
		}
		if x.Warnings == nil {
			t.Errorf("negative length was not reported")
		}
		wantPrintable(t, x, "Image ImageWidth", "640")
	})

	t.Run("tiff", func(t *testing.T) {
		b := newTIFF(binary.LittleEndian)
		strip := b.blob([]byte{1, 2, 3, 4, 5, 6})
		ifd1 := b.dir(0,
			b.short(0x0103, 1),
			b.long(0x0111, strip),
			entry{id: 0x0117, typ: 9, val: []byte{0xFB, 0xFF, 0xFF, 0xFF}},
		)
		ifd0 := b.dir(ifd1, b.short(0x0100, 640))
		x := decodeBytes(t, b.bytes(ifd0), nil)

		wantPrintable(t, x, "Thumbnail StripByteCounts", "-5")
		if x.Warnings == nil {
			t.Errorf("negative strip count was not reported")
		}
		if got, err := x.TIFFThumbnail(); err == nil && bytes.Contains(got, []byte{1, 2, 3, 4, 5, 6}) {
			t.Errorf("strip of negative length was copied")
		}
	})
}

func TestDecodeMakerNoteThumbnail(t *testing.T) {
	thumb := []byte{0xFF, 0xD8, 9, 8, 7, 0xFF, 0xD9}
	b := newTIFF(binary.BigEndian)
	note := b.blob([]byte("OLYMP\x00\x01\x00"))
	b.dir(0,
		undefined(0x0100, thumb),
		b.long(0x0200, 0, 5, 1),
		b.short(0x0201, 2),
	)
	size := uint32(len(b.buf)) - note
	exif := b.dir(0, entry{id: 0x927C, typ: 7, count: size, ref: note})
	ifd0 := b.dir(0, ascii(0x010F, "OLYMPUS OPTICAL CO.,LTD"), b.long(0x8769, exif))
	img := b.bytes(ifd0)

	x := decodeBytes(t, img, nil)
	got, err := x.JPEGThumbnail()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, thumb) {
		t.Errorf("thumbnail = % X, want the maker note's", got)
	}

	// the stop tag only ends the main directories
	opts := DefaultOptions()
	opts.StopTag = "SpecialMode"
	x = decodeBytes(t, img, &opts)
	wantPrintable(t, x, "MakerNote SpecialMode", "Normal - sequence 5 - Left to right")
	wantPrintable(t, x, "MakerNote JPEGQual", "HQ")
}

func TestDecodeStuffedSegment(t *testing.T) {
	tb := newTIFF(binary.BigEndian)
	ifd0 := tb.dir(0, tb.short(0x0100, 800))
	dqt := segment(0xDB, []byte{0x00, 0xFF, 0x00, 0x10})
	x := decodeBytes(t, jpeg(dqt, exifSegment(tb.bytes(ifd0))), nil)

	wantPrintable(t, x, "Image ImageWidth", "800")
	if x.Synthetic {
		t.Errorf("EXIF behind a quantization table reported as synthetic")
	}

	x = decodeBytes(t, []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x06, 0x12, 0xFF, 0x00, 0x34}, nil)
	if len(x.Tags) != 0 {
		t.Errorf("got tags %v", x.Tags)
	}
	if !errors.Is(x.Warnings, ErrNotRecognized) {
		t.Errorf("warnings = %v, want ErrNotRecognized", x.Warnings)
	}
}

func TestSkipLeading(t *testing.T) {
	tb := newTIFF(binary.BigEndian)
	ifd0 := tb.dir(0, tb.short(0x0100, 800))
	jfif := jfifSegment(1, 72, 72)
	jfxx := segment(0xE0, []byte("JFXX\x00\x13 no thumbnail"))
	img := jpeg(jfif, jfxx, exifSegment(tb.bytes(ifd0)))

	src, err := tiff.NewSource(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	pos, skipped, err := skipLeading(src, img[:12])
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 + len(jfif) + len(jfxx); pos != want || !skipped {
		t.Errorf("got position %d (skipped %v), want %d", pos, skipped, want)
	}

	x := decodeBytes(t, img, nil)
	if !x.Synthetic {
		t.Errorf("EXIF behind JFIF and JFXX should be synthetic")
	}
	wantPrintable(t, x, "Image ImageWidth", "800")
}
