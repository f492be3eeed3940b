package tiff

import "fmt"

// DataType is the field type code stored in bytes 2-3 of an IFD entry.
type DataType uint16

const (
	DTProprietary DataType = 0
	DTByte        DataType = 1
	DTAscii       DataType = 2
	DTShort       DataType = 3
	DTLong        DataType = 4
	DTRational    DataType = 5
	DTSByte       DataType = 6
	DTUndefined   DataType = 7
	DTSShort      DataType = 8
	DTSLong       DataType = 9
	DTSRational   DataType = 10
	DTFloat       DataType = 11
	DTDouble      DataType = 12
)

// TypeCategory specifies the category of a type.
type TypeCategory int

// Type categories.
const (
	IntVal TypeCategory = iota
	FloatVal
	RatVal
	StringVal
	UndefVal
	OtherVal
)

type fieldType struct {
	size   int
	signed bool
	abbrev string
	name   string
}

// fieldTypes is indexed by DataType. Entry 0 only names the placeholder
// type given to values synthesized outside of an IFD.
var fieldTypes = [...]fieldType{
	DTProprietary: {0, false, "X", "Proprietary"},
	DTByte:        {1, false, "B", "Byte"},
	DTAscii:       {1, false, "A", "ASCII"},
	DTShort:       {2, false, "S", "Short"},
	DTLong:        {4, false, "L", "Long"},
	DTRational:    {8, false, "R", "Ratio"},
	DTSByte:       {1, true, "SB", "Signed Byte"},
	DTUndefined:   {1, false, "U", "Undefined"},
	DTSShort:      {2, true, "SS", "Signed Short"},
	DTSLong:       {4, true, "SL", "Signed Long"},
	DTSRational:   {8, true, "SR", "Signed Ratio"},
	DTFloat:       {4, true, "F", "Float"},
	DTDouble:      {8, true, "D", "Double"},
}

// Valid reports whether dt may appear in an IFD entry.
func (dt DataType) Valid() bool {
	return dt >= DTByte && dt <= DTDouble
}

// Size returns the byte length of one element of type dt, or 0 for an
// invalid type.
func (dt DataType) Size() int {
	if int(dt) >= len(fieldTypes) {
		return 0
	}
	return fieldTypes[dt].size
}

// Signed reports whether values of type dt are sign extended.
func (dt DataType) Signed() bool {
	if int(dt) >= len(fieldTypes) {
		return false
	}
	return fieldTypes[dt].signed
}

// Abbrev returns the short form of the type name, e.g. "SR".
func (dt DataType) Abbrev() string {
	if int(dt) >= len(fieldTypes) {
		return "?"
	}
	return fieldTypes[dt].abbrev
}

func (dt DataType) String() string {
	if int(dt) >= len(fieldTypes) {
		return fmt.Sprintf("Type(%d)", uint16(dt))
	}
	return fieldTypes[dt].name
}

// Category returns a value indicating which accessor of Tag retrieves
// values of this type.
func (dt DataType) Category() TypeCategory {
	switch dt {
	case DTByte, DTShort, DTLong, DTSByte, DTSShort, DTSLong:
		return IntVal
	case DTRational, DTSRational:
		return RatVal
	case DTFloat, DTDouble:
		return FloatVal
	case DTAscii:
		return StringVal
	case DTUndefined:
		return UndefVal
	}
	return OtherVal
}
