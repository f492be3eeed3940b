package tiff

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoValue is returned by the typed accessors of Tag when the requested
// element does not exist.
var ErrNoValue = errors.New("tiff: tag has no value at index")

// Tag reflects the parsed content of a tiff IFD entry.
type Tag struct {
	// ID is the 2-byte tiff tag identifier.
	ID uint16
	// Name is the display name the tag was decoded under.
	Name string
	// Type is the field type code of the entry.
	Type DataType
	// Count is the number of elements of type Type declared by the entry.
	// Fewer values may have been decoded (see Len).
	Count uint32
	// Val holds the bytes that were read for the tag's value.
	Val []byte
	// ValOffset is the offset of the value relative to the base of the frame
	// it was decoded in. For values that fit in the entry it points at the
	// entry's value field.
	ValOffset int64

	rule  ValueRule
	order binary.ByteOrder

	intVals   []int64
	floatVals []float64
	ratVals   []Ratio
	strVal    string

	printable string
}

func newTag(id uint16, def TagDef, typ DataType, count uint32, off int64, val []byte, order binary.ByteOrder) *Tag {
	t := &Tag{
		ID:        id,
		Name:      def.Name,
		Type:      typ,
		Count:     count,
		Val:       val,
		ValOffset: off,
		rule:      def.Rule,
		order:     order,
	}
	t.convertVals()
	t.printable = t.render()
	return t
}

// NewIntTag builds a tag that did not come from an IFD entry, holding the
// given integer values.
func NewIntTag(id uint16, def TagDef, typ DataType, off int64, vals ...int64) *Tag {
	t := &Tag{
		ID:        id,
		Name:      def.Name,
		Type:      typ,
		Count:     uint32(len(vals)),
		ValOffset: off,
		rule:      def.Rule,
		intVals:   vals,
	}
	t.printable = t.render()
	return t
}

// NewRatioTag builds a tag that did not come from an IFD entry, holding the
// given unsigned ratios.
func NewRatioTag(id uint16, def TagDef, off int64, vals ...Ratio) *Tag {
	t := &Tag{
		ID:        id,
		Name:      def.Name,
		Type:      DTRational,
		Count:     uint32(len(vals)),
		ValOffset: off,
		rule:      def.Rule,
		ratVals:   vals,
	}
	t.printable = t.render()
	return t
}

// NewTextTag builds a proprietary tag whose only content is its display
// text.
func NewTextTag(name, text string) *Tag {
	return &Tag{Name: name, Type: DTProprietary, strVal: text, printable: text}
}

// NewBlobTag builds a tag holding raw bytes such as an extracted thumbnail.
func NewBlobTag(name string, b []byte) *Tag {
	return &Tag{
		Name:      name,
		Type:      DTUndefined,
		Count:     uint32(len(b)),
		Val:       b,
		printable: fmt.Sprintf("%d bytes", len(b)),
	}
}

func (t *Tag) convertVals() {
	if t.Type == DTAscii {
		s := t.Val
		if i := bytes.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		t.strVal = string(s)
		return
	}

	size := t.Type.Size()
	if size == 0 {
		return
	}
	n := len(t.Val) / size
	switch t.Type.Category() {
	case IntVal, UndefVal:
		t.intVals = make([]int64, n)
		for i := range t.intVals {
			b := t.Val[i*size : (i+1)*size]
			if t.Type.Signed() {
				t.intVals[i] = Int(t.order, b)
			} else {
				t.intVals[i] = int64(Uint(t.order, b))
			}
		}
	case RatVal:
		t.ratVals = make([]Ratio, n)
		for i := range t.ratVals {
			num, den := t.Val[i*8:i*8+4], t.Val[i*8+4:i*8+8]
			if t.Type.Signed() {
				t.ratVals[i] = Ratio{Num: Int(t.order, num), Den: Int(t.order, den)}
			} else {
				t.ratVals[i] = Ratio{Num: int64(Uint(t.order, num)), Den: int64(Uint(t.order, den))}
			}
		}
	case FloatVal:
		t.floatVals = make([]float64, n)
		for i := range t.floatVals {
			b := t.Val[i*size : (i+1)*size]
			if t.Type == DTFloat {
				t.floatVals[i] = float64(math.Float32frombits(uint32(Uint(t.order, b))))
			} else {
				t.floatVals[i] = math.Float64frombits(Uint(t.order, b))
			}
		}
	}
}

// TypeCategory returns a value indicating which method can be called to
// retrieve the tag's value properly typed (e.g. integer, rational, etc.).
func (t *Tag) TypeCategory() TypeCategory {
	return t.Type.Category()
}

// Len returns the number of values that were decoded. For ASCII tags it is
// the length of the string.
func (t *Tag) Len() int {
	switch t.Type.Category() {
	case IntVal:
		return len(t.intVals)
	case UndefVal:
		return len(t.intVals)
	case RatVal:
		return len(t.ratVals)
	case FloatVal:
		return len(t.floatVals)
	case StringVal:
		return len(t.strVal)
	}
	return 0
}

func (t *Tag) typeErr(want TypeCategory) error {
	return fmt.Errorf("tiff: tag 0x%04X has type %v, not category %d", t.ID, t.Type, want)
}

// Int returns the tag's i'th value as an integer. Undefined tags expose
// their bytes as integers.
func (t *Tag) Int(i int) (int64, error) {
	if c := t.TypeCategory(); c != IntVal && c != UndefVal {
		return 0, t.typeErr(IntVal)
	}
	if i < 0 || i >= len(t.intVals) {
		return 0, ErrNoValue
	}
	return t.intVals[i], nil
}

// Ratio returns the tag's i'th value as a Ratio.
func (t *Tag) Ratio(i int) (Ratio, error) {
	if t.TypeCategory() != RatVal {
		return Ratio{}, t.typeErr(RatVal)
	}
	if i < 0 || i >= len(t.ratVals) {
		return Ratio{}, ErrNoValue
	}
	return t.ratVals[i], nil
}

// Rat2 returns the tag's i'th value as a rational number represented by a
// numerator-denominator pair.
func (t *Tag) Rat2(i int) (num, den int64, err error) {
	r, err := t.Ratio(i)
	return r.Num, r.Den, err
}

// Rat returns the tag's i'th value as a rational number. It fails if the
// denominator is zero; use Rat2 in that case.
func (t *Tag) Rat(i int) (*big.Rat, error) {
	r, err := t.Ratio(i)
	if err != nil {
		return nil, err
	}
	if r.Den == 0 {
		return nil, fmt.Errorf("tiff: tag 0x%04X value %d has a zero denominator", t.ID, i)
	}
	return r.Rat(), nil
}

// Float returns the tag's i'th value as a float.
func (t *Tag) Float(i int) (float64, error) {
	if t.TypeCategory() != FloatVal {
		return 0, t.typeErr(FloatVal)
	}
	if i < 0 || i >= len(t.floatVals) {
		return 0, ErrNoValue
	}
	return t.floatVals[i], nil
}

// StringVal returns the tag's value as a string, cut at the first NUL.
func (t *Tag) StringVal() (string, error) {
	if t.TypeCategory() != StringVal {
		return "", t.typeErr(StringVal)
	}
	return t.strVal, nil
}

// Printable returns the display form of the tag's value.
func (t *Tag) Printable() string {
	return t.printable
}

func (t *Tag) render() string {
	if t.rule != nil {
		return t.rule.render(t)
	}
	n := t.Len()
	if t.Type == DTAscii {
		if t.Count > 50 && n > 20 {
			return t.strVal[:20] + "..."
		}
		return t.strVal
	}
	if t.Count == 1 && n > 0 {
		return t.valueString(0)
	}
	if t.Count > 50 && n > 20 {
		return "[" + t.listString(20, ",") + ", ... ]"
	}
	return "[" + t.listString(n, ", ") + "]"
}

func (t *Tag) valueString(i int) string {
	switch t.TypeCategory() {
	case IntVal, UndefVal:
		return strconv.FormatInt(t.intVals[i], 10)
	case RatVal:
		return t.ratVals[i].String()
	case FloatVal:
		return strconv.FormatFloat(t.floatVals[i], 'g', -1, 64)
	case StringVal:
		return string(t.strVal[i])
	}
	return ""
}

func (t *Tag) listString(n int, sep string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = t.valueString(i)
	}
	return strings.Join(parts, sep)
}

// String returns a nicely formatted version of the tag.
func (t *Tag) String() string {
	return fmt.Sprintf("(0x%04X) %v=%s @ %d", t.ID, t.Type, t.printable, t.ValOffset)
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	switch t.TypeCategory() {
	case StringVal:
		return nullString([]byte(t.strVal)), nil
	case UndefVal:
		return nullString(t.Val), nil
	case OtherVal:
		return json.Marshal(t.printable)
	}

	rv := make([]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		switch t.TypeCategory() {
		case RatVal:
			rv = append(rv, fmt.Sprintf(`"%v/%v"`, t.ratVals[i].Num, t.ratVals[i].Den))
		case FloatVal:
			rv = append(rv, strconv.FormatFloat(t.floatVals[i], 'g', -1, 64))
		case IntVal:
			rv = append(rv, strconv.FormatInt(t.intVals[i], 10))
		}
	}
	return []byte(fmt.Sprintf(`[%s]`, strings.Join(rv, ","))), nil
}

func nullString(in []byte) []byte {
	rv := bytes.Buffer{}
	rv.WriteByte('"')
	for _, b := range in {
		if b == '"' || b == '\\' {
			rv.WriteByte('\\')
		}
		if unicode.IsPrint(rune(b)) {
			rv.WriteByte(b)
		}
	}
	rv.WriteByte('"')
	rvb := rv.Bytes()
	if utf8.Valid(rvb) {
		return rvb
	}
	return []byte(`""`)
}
