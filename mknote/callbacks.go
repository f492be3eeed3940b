package mknote

import (
	"fmt"
	"strings"

	"github.com/cul/imgprops/tiff"
)

func ints(t *tiff.Tag) []int64 {
	vals := make([]int64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		v, err := t.Int(i)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return vals
}

func intList(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var (
	olympusModes     = []string{"Normal", "Unknown", "Fast", "Panorama"}
	olympusSequences = []string{"Non-panoramic", "Left to right", "Right to left", "Bottom to top", "Top to bottom"}
)

// olympusSpecialMode renders the picture taking mode, sequence number and
// panorama direction of an Olympus SpecialMode tag.
func olympusSpecialMode(t *tiff.Tag) string {
	v := ints(t)
	if len(v) < 3 || v[0] < 0 || v[0] >= int64(len(olympusModes)) || v[2] < 0 || v[2] >= int64(len(olympusSequences)) {
		return intList(v)
	}
	return fmt.Sprintf("%s - sequence %d - %s", olympusModes[v[0]], v[1], olympusSequences[v[2]])
}

var nikonEVSteps = map[[4]int64]string{
	{252, 1, 6, 0}: "-2/3 EV",
	{253, 1, 6, 0}: "-1/2 EV",
	{254, 1, 6, 0}: "-1/3 EV",
	{0, 1, 6, 0}:   "0 EV",
	{2, 1, 6, 0}:   "+1/3 EV",
	{3, 1, 6, 0}:   "+1/2 EV",
	{4, 1, 6, 0}:   "+2/3 EV",
}

// nikonEVBias renders a Nikon exposure bias. The first byte counts steps
// whose size is given by the third byte.
func nikonEVBias(t *tiff.Tag) string {
	seq := ints(t)
	if len(seq) < 4 {
		return ""
	}
	if s, ok := nikonEVSteps[[4]int64{seq[0], seq[1], seq[2], seq[3]}]; ok {
		return s
	}

	a, b := seq[0], seq[2]
	if a == 0 {
		return "0 EV"
	}
	if b == 0 {
		return intList(seq)
	}
	sign := "+"
	if a > 127 {
		a = 256 - a
		sign = "-"
	}

	s := sign
	if whole := a / b; whole != 0 {
		s += fmt.Sprintf("%d ", whole)
	}
	if a %= b; a == 0 {
		return s + "EV"
	}
	return s + tiff.Ratio{Num: a, Den: b}.String() + " EV"
}
