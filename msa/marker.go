package msa

import (
	"sort"
	"strconv"
	"strings"
)

// Characters of the built in marker legends.
const (
	Ungapped = 'O'
	Gapped   = 'X'

	Consistent   = 'C'
	Inconsistent = 'N'
)

var gapLegend = map[byte]string{
	Ungapped: "ungapped",
	Gapped:   "gapped",
}

var consistencyLegend = map[byte]string{
	Consistent:   "consistent",
	Inconsistent: "inconsistent",
}

// A Marker annotates every column of an alignment with one character from
// its legend. GapMarker on an Alignment builds the most common kind.
//
// Markers are written in a run length encoded form, where each run is its
// start column followed by its character and the last number is the total
// length. For example, "0O3X4O10X13O15" has gaps at columns 3 and 10-12 of a
// 15 column alignment.
type Marker struct {
	Name        string
	Description string
	legend      map[byte]string
	track       []byte
}

// A Run is a maximal stretch [Start, End) of columns with the same marker
// character.
type Run struct {
	Start, End int
	Char       byte
}

// NewMarker creates a marker from a track of characters, one per column.
// Every character must be a key of legend.
func NewMarker(name string, legend map[byte]string, track string) (Marker, error) {
	for i := 0; i < len(track); i++ {
		if _, ok := legend[track[i]]; !ok {
			return Marker{}, &InvalidMarkerError{Pos: i, Char: track[i]}
		}
	}
	lg := make(map[byte]string, len(legend))
	for k, v := range legend {
		lg[k] = v
	}
	return Marker{
		Name:   name,
		legend: lg,
		track:  []byte(track),
	}, nil
}

// NewGapMarker creates a marker using the 'O' (ungapped) and 'X' (gapped)
// legend.
func NewGapMarker(name, track string) (Marker, error) {
	return NewMarker(name, gapLegend, track)
}

// NewConsistencyMarker creates a marker using the 'C' (consistent) and 'N'
// (inconsistent) legend.
func NewConsistencyMarker(name, track string) (Marker, error) {
	return NewMarker(name, consistencyLegend, track)
}

// DecodeMarker is the inverse of Marker.String.
func DecodeMarker(name string, legend map[byte]string, encoded string) (Marker, error) {
	var track []byte
	pos, prevStart := 0, -1
	var prevChar byte
	for {
		start := pos
		for pos < len(encoded) && encoded[pos] >= '0' && encoded[pos] <= '9' {
			pos++
		}
		if start == pos {
			return Marker{}, &InvalidMarkerError{Pos: pos, Msg: "expected a column number"}
		}
		col, err := strconv.Atoi(encoded[start:pos])
		if err != nil {
			return Marker{}, &InvalidMarkerError{Pos: start, Msg: err.Error()}
		}
		if prevStart >= 0 {
			if col <= prevStart {
				return Marker{}, &InvalidMarkerError{Pos: start, Msg: "columns must increase"}
			}
			for i := prevStart; i < col; i++ {
				track = append(track, prevChar)
			}
		} else if col != 0 {
			return Marker{}, &InvalidMarkerError{Pos: start, Msg: "first run must start at 0"}
		}
		if pos == len(encoded) {
			break
		}
		prevStart, prevChar = col, encoded[pos]
		pos++
	}
	return NewMarker(name, legend, string(track))
}

// Len returns the number of columns covered by the marker.
func (m Marker) Len() int { return len(m.track) }

// At returns the marker character of column i.
func (m Marker) At(i int) byte { return m.track[i] }

// Track returns one marker character per column.
func (m Marker) Track() string { return string(m.track) }

// Legend returns a copy of the marker's legend.
func (m Marker) Legend() map[byte]string {
	lg := make(map[byte]string, len(m.legend))
	for k, v := range m.legend {
		lg[k] = v
	}
	return lg
}

// Runs returns the run length encoding of the marker.
func (m Marker) Runs() []Run {
	var runs []Run
	for i := 0; i < len(m.track); i++ {
		if n := len(runs); n > 0 && runs[n-1].Char == m.track[i] {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, Run{Start: i, End: i + 1, Char: m.track[i]})
	}
	return runs
}

// String returns the run length encoded form of the marker.
func (m Marker) String() string {
	var buf strings.Builder
	for _, r := range m.Runs() {
		buf.WriteString(strconv.Itoa(r.Start))
		buf.WriteByte(r.Char)
	}
	buf.WriteString(strconv.Itoa(len(m.track)))
	return buf.String()
}

// Coords returns the columns marked with c, in increasing order. If inverse
// is true, the columns not marked with c are returned instead.
func (m Marker) Coords(c byte, inverse bool) []int {
	coords := make([]int, 0, len(m.track))
	for i, b := range m.track {
		if (b == c) != inverse {
			coords = append(coords, i)
		}
	}
	return coords
}

// Intervals is like Coords, but merges adjacent columns into half open
// [start, end) intervals.
func (m Marker) Intervals(c byte, inverse bool) [][2]int {
	var ivs [][2]int
	for _, i := range m.Coords(c, inverse) {
		if n := len(ivs); n > 0 && ivs[n-1][1] == i {
			ivs[n-1][1] = i + 1
			continue
		}
		ivs = append(ivs, [2]int{i, i + 1})
	}
	return ivs
}

// Filter removes the characters of s whose column is marked with one of the
// exclude characters. s must have one character per column.
func (m Marker) Filter(s string, exclude ...byte) (string, error) {
	if len(s) != len(m.track) {
		return "", &MarkerLengthError{Marker: m.Name, Expected: len(s), Actual: len(m.track)}
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if !contains(exclude, m.track[i]) {
			buf.WriteByte(s[i])
		}
	}
	return buf.String(), nil
}

// Mask replaces the characters of s whose column is marked with one of chars
// with mask. s must have one character per column.
func (m Marker) Mask(s string, mask byte, chars ...byte) (string, error) {
	if len(s) != len(m.track) {
		return "", &MarkerLengthError{Marker: m.Name, Expected: len(s), Actual: len(m.track)}
	}
	bs := []byte(s)
	for i := range bs {
		if contains(chars, m.track[i]) {
			bs[i] = mask
		}
	}
	return string(bs), nil
}

// Chars returns the legend characters in sorted order.
func (m Marker) Chars() []byte {
	chars := make([]byte, 0, len(m.legend))
	for c := range m.legend {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

func contains(bs []byte, b byte) bool {
	for _, c := range bs {
		if c == b {
			return true
		}
	}
	return false
}
