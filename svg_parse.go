package bezclip

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidPath is returned, possibly wrapped, for malformed SVG path data.
var ErrInvalidPath = errors.New("invalid path data")

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

type pathScanner struct {
	path []byte
	i    int
}

func (s *pathScanner) num() (float64, error) {
	s.i += skipCommaWhitespace(s.path[s.i:])
	f, n := strconv.ParseFloat(s.path[s.i:])
	if n == 0 {
		if s.i == len(s.path) {
			return 0, fmt.Errorf("%w: unexpected end, expected number", ErrInvalidPath)
		}
		return 0, fmt.Errorf("%w: expected number at offset %d, found %q", ErrInvalidPath, s.i, s.path[s.i])
	}
	s.i += n
	return f, nil
}

func (s *pathScanner) nums(dst []float64) error {
	for j := range dst {
		f, err := s.num()
		if err != nil {
			return err
		}
		dst[j] = f
	}
	return nil
}

func (s *pathScanner) point(rel bool, cur Point) (Point, error) {
	var v [2]float64
	if err := s.nums(v[:]); err != nil {
		return Point{}, err
	}
	pt := Pt(v[0], v[1])
	if rel {
		pt = pt.Translate(Vec2(cur))
	}
	return pt, nil
}

// ParseSVGPath parses SVG path data, as found in the d attribute of a path
// element. All commands except for elliptical arcs are supported, in their
// absolute and relative forms, including implicitly repeated commands and
// the reflected control points of S and T.
//
// Errors wrap [ErrInvalidPath].
func ParseSVGPath(d string) (BezPath, error) {
	s := &pathScanner{path: []byte(d)}
	var p BezPath

	var prevCmd byte
	var start, cur, ctrl Point

	s.i = skipCommaWhitespace(s.path)
	for s.i < len(s.path) {
		cmd := prevCmd
		if c := s.path[s.i]; isPathCommand(c) {
			cmd = c
			s.i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("%w: path must start with a command, found %q", ErrInvalidPath, c)
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: unexpected %q after close path", ErrInvalidPath, c)
		}
		if prevCmd == 0 && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("%w: path must start with a move, found %q", ErrInvalidPath, cmd)
		}

		rel := cmd >= 'a'
		next := cmd
		switch cmd {
		case 'M', 'm':
			pt, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt)
			start, cur = pt, pt
			// Coordinates following a move are lines.
			next = 'L'
			if rel {
				next = 'l'
			}
		case 'Z', 'z':
			p.ClosePath()
			cur = start
		case 'L', 'l':
			pt, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.LineTo(pt)
			cur = pt
		case 'H', 'h':
			x, err := s.num()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			p.LineTo(cur)
		case 'V', 'v':
			y, err := s.num()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			p.LineTo(cur)
		case 'C', 'c':
			p1, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p3, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.CubicTo(p1, p2, p3)
			ctrl, cur = p2, p3
		case 'S', 's':
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p3, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p1 := cur
			switch prevCmd {
			case 'C', 'c', 'S', 's':
				p1 = reflect(ctrl, cur)
			}
			p.CubicTo(p1, p2, p3)
			ctrl, cur = p2, p3
		case 'Q', 'q':
			p1, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.QuadTo(p1, p2)
			ctrl, cur = p1, p2
		case 'T', 't':
			p2, err := s.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p1 := cur
			switch prevCmd {
			case 'Q', 'q', 'T', 't':
				p1 = reflect(ctrl, cur)
			}
			p.QuadTo(p1, p2)
			ctrl, cur = p1, p2
		case 'A', 'a':
			return nil, fmt.Errorf("%w: elliptical arcs are not supported", ErrInvalidPath)
		default:
			panic("unreachable")
		}
		prevCmd = next
		s.i += skipCommaWhitespace(s.path[s.i:])
	}
	return p, nil
}

// reflect mirrors ctrl through pt.
func reflect(ctrl, pt Point) Point {
	return Point{2*pt.X - ctrl.X, 2*pt.Y - ctrl.Y}
}
