// Package mknote implements decoding of the camera maker notes found in
// the EXIF MakerNote tag. Supported are the Nikon, Olympus, Casio, Fujifilm
// and Canon formats.
package mknote

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	log "github.com/dsoprea/go-logging"

	"github.com/cul/imgprops/tiff"
)

var mknoteLogger = log.NewLogger("mknote")

// ErrCorruptMakerNote is returned when a Nikon type 2 note lacks the TIFF
// marker of its embedded header.
var ErrCorruptMakerNote = errors.New("mknote: missing marker tag '42' in MakerNote")

// Vendor identifies a maker note format.
type Vendor int

const (
	Unknown Vendor = iota
	Nikon
	Olympus
	Casio
	Fujifilm
	Canon
)

var vendorNames = [...]string{
	Unknown:  "Unknown",
	Nikon:    "Nikon",
	Olympus:  "Olympus",
	Casio:    "Casio",
	Fujifilm: "Fujifilm",
	Canon:    "Canon",
}

func (v Vendor) String() string {
	if v < 0 || int(v) >= len(vendorNames) {
		return fmt.Sprintf("Vendor(%d)", int(v))
	}
	return vendorNames[v]
}

// VendorOf derives the maker note format from the value of the Make tag.
func VendorOf(mk string) Vendor {
	switch {
	case strings.Contains(mk, "NIKON"):
		return Nikon
	case strings.HasPrefix(mk, "OLYMPUS"):
		return Olympus
	case strings.Contains(mk, "CASIO"), strings.Contains(mk, "Casio"):
		return Casio
	case mk == "FUJIFILM":
		return Fujifilm
	case mk == "Canon":
		return Canon
	}
	return Unknown
}

var (
	nikonType1 = []byte("Nikon\x00\x01")
	nikonType2 = []byte("Nikon\x00\x02")
)

// layout describes where the directory of a maker note lives and how its
// pointers are resolved.
type layout struct {
	dict tiff.Dict
	// skip is the offset of the directory from the start of the note.
	skip int64
	// relative pointers count from the note's own TIFF header.
	relative bool
	// standalone notes are little endian TIFF structures whose offsets
	// count from the start of the note, whatever the outer byte order.
	standalone bool
}

func (v Vendor) layout(note []byte) (layout, error) {
	switch v {
	case Nikon:
		switch {
		case bytes.HasPrefix(note, nikonType1):
			return layout{dict: nikonOlderTags, skip: 8}, nil
		case bytes.HasPrefix(note, nikonType2):
			if len(note) < 14 || !(note[12] == 0 && note[13] == 42 || note[12] == 42 && note[13] == 0) {
				return layout{}, ErrCorruptMakerNote
			}
			// skip the label and the TIFF header
			return layout{dict: nikonNewerTags, skip: 10 + 8, relative: true}, nil
		}
		// E99x and D1 notes have no header
		return layout{dict: nikonNewerTags}, nil
	case Olympus:
		return layout{dict: olympusTags, skip: 8}, nil
	case Casio:
		return layout{dict: casioTags}, nil
	case Fujifilm:
		return layout{dict: fujifilmTags, skip: 12, standalone: true}, nil
	case Canon:
		return layout{dict: canonTags}, nil
	}
	return layout{}, fmt.Errorf("mknote: no layout for vendor %v", v)
}

// Decode decodes the maker note held by note into d.Tags under the
// "MakerNote" directory. mk is the printable value of the Make tag. A
// note of an unknown vendor is left undecoded. The stop tag of d does not
// apply inside the note.
func Decode(d *tiff.Decoder, f tiff.Frame, note *tiff.Tag, mk string) error {
	v := VendorOf(mk)
	if v == Unknown {
		mknoteLogger.Debugf(nil, "no maker note format for make %q", mk)
		return nil
	}

	stop := d.StopTag
	d.StopTag = "UNDEF"
	defer func() { d.StopTag = stop }()

	l, err := v.layout(note.Val)
	if err != nil {
		return err
	}

	frame, ifd := f, note.ValOffset+l.skip
	if l.standalone {
		frame, ifd = f.Rebase(binary.LittleEndian, note.ValOffset), l.skip
	}
	mknoteLogger.Debugf(nil, "decoding %v maker note at %d", v, frame.Base+ifd)
	if err := d.DumpIFD(frame, ifd, "MakerNote", l.dict, l.relative); err != nil {
		return err
	}

	switch v {
	case Olympus:
		return olympusCameraSettings(d, frame)
	case Canon:
		canonSubTags(d, "MakerNote Tag 0x0001", canonCameraSettingsTags)
		canonSubTags(d, "MakerNote Tag 0x0004", canonShotInfoTags)
	}
	return nil
}

// olympusCameraSettings walks the CameraSettings directory of newer Olympus
// notes. It is stored either as a pointer or inline as an undefined blob
// whose offsets count from its own start.
func olympusCameraSettings(d *tiff.Decoder, f tiff.Frame) error {
	t, ok := d.Tags["MakerNote CameraSettings"]
	if !ok {
		return nil
	}
	const dir = "MakerNote CameraSettings"
	switch t.TypeCategory() {
	case tiff.IntVal:
		if t.Count != 1 {
			break
		}
		off, err := t.Int(0)
		if err != nil {
			break
		}
		return d.DumpIFD(f, off, dir, olympusCameraSettingsTags, false)
	case tiff.UndefVal:
		return d.DumpIFD(f.Rebase(f.Order, t.ValOffset), 0, dir, olympusCameraSettingsTags, false)
	}
	d.Warn(fmt.Errorf("mknote: cannot locate Olympus CameraSettings of type %v", t.Type))
	return nil
}

// canonSubTags splits the packed short array stored under key into named
// tags. Element 0 holds the byte length of the array and is skipped.
func canonSubTags(d *tiff.Decoder, key string, dict tiff.Dict) {
	t, ok := d.Tags[key]
	if !ok {
		return
	}
	if t.TypeCategory() != tiff.IntVal {
		d.Warn(fmt.Errorf("mknote: %s has type %v, want short", key, t.Type))
		return
	}
	for i := 1; i < t.Len(); i++ {
		def, ok := dict[uint16(i)]
		if !ok {
			continue
		}
		v, err := t.Int(i)
		if err != nil {
			d.Warn(fmt.Errorf("mknote: %s element %d: %w", key, i, err))
			return
		}
		d.Tags["MakerNote "+def.Name] = tiff.NewTextTag(def.Name, lookup(def, v))
	}
}

func lookup(def tiff.TagDef, v int64) string {
	names, ok := def.Rule.(tiff.Lookup)
	if !ok {
		return fmt.Sprint(v)
	}
	if name, ok := names[v]; ok {
		return name
	}
	return "Unknown"
}
