package bezclip

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path commands to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements to w as SVG path commands,
// separated by spaces. Only absolute commands are written, so the output can
// be read back by [ParseSVGPath] unchanged.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	first := true
	for el := range seq {
		buf = buf[:0]
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		buf = appendSVGElement(buf, el, opts.MaxPrecision)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

var svgCommands = [...]byte{
	MoveToKind:    'M',
	LineToKind:    'L',
	QuadToKind:    'Q',
	CubicToKind:   'C',
	ClosePathKind: 'Z',
}

func appendSVGElement(b []byte, el PathElement, prec int) []byte {
	if el.Kind < MoveToKind || el.Kind > ClosePathKind {
		panic(fmt.Sprintf("bezclip: invalid path element kind %d", int(el.Kind)))
	}
	b = append(b, svgCommands[el.Kind])
	for i, p := range el.points() {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, formatCoord(p.X, prec)...)
		b = append(b, ',')
		b = append(b, formatCoord(p.Y, prec)...)
	}
	return b
}

func formatCoord(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
