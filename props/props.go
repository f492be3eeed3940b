// Package props projects decoded EXIF tags onto the generic properties of
// an image: its pixel dimensions and sampling frequencies.
package props

import (
	"github.com/cul/imgprops/tiff"
)

// SamplingUnit names the unit of the sampling frequencies.
type SamplingUnit string

const (
	CentimeterSampling SamplingUnit = "CentimeterSampling"
	InchSampling       SamplingUnit = "InchSampling"
	NoAbsoluteSampling SamplingUnit = "NoAbsoluteSampling"
)

// Properties is the image properties record. Zero fields were not present
// in the tags.
type Properties struct {
	Width              int64        `json:"width,omitempty"`
	Length             int64        `json:"length,omitempty"`
	XSamplingFrequency string       `json:"xSamplingFrequency,omitempty"`
	YSamplingFrequency string       `json:"ySamplingFrequency,omitempty"`
	SamplingUnit       SamplingUnit `json:"samplingFrequencyUnit,omitempty"`
}

// FromTags reads the properties from the Image directory of tags. Other
// keys are ignored.
func FromTags(tags tiff.TagMap) Properties {
	var p Properties
	if t, ok := tags["Image ImageWidth"]; ok {
		p.Width, _ = t.Int(0)
	}
	if t, ok := tags["Image ImageLength"]; ok {
		p.Length, _ = t.Int(0)
	}
	p.XSamplingFrequency = frequency(tags["Image XResolution"])
	p.YSamplingFrequency = frequency(tags["Image YResolution"])
	if t, ok := tags["Image ResolutionUnit"]; ok {
		v, _ := t.Int(0)
		switch v {
		case 3:
			p.SamplingUnit = CentimeterSampling
		case 2:
			p.SamplingUnit = InchSampling
		default:
			p.SamplingUnit = NoAbsoluteSampling
		}
	}
	return p
}

func frequency(t *tiff.Tag) string {
	if t == nil {
		return ""
	}
	if r, err := t.Ratio(0); err == nil {
		return r.String()
	}
	if v, err := t.Int(0); err == nil {
		return tiff.Ratio{Num: v, Den: 1}.String()
	}
	return ""
}
