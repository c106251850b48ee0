package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"

	"honnef.co/go/bezclip"
)

type Root struct{}

type Intersect struct {
	Iterations int     `default:"32" desc:"Clipping iterations before testing for collinear curves"`
	Stall      float64 `default:"0.8" desc:"Clipping ratio above which curves are split"`
	Precision  int     `short:"p" default:"0" desc:"Decimal places in output, 0 for shortest exact"`
	Format     string  `short:"f" default:"text" desc:"Output format: text or geojson"`
	Verbose    bool    `short:"v" desc:"Log debug information to stderr"`
	A          string  `index:"0" desc:"First SVG path"`
	B          string  `index:"1" desc:"Second SVG path"`
}

type Self struct {
	Iterations int     `default:"32" desc:"Clipping iterations before testing for collinear curves"`
	Stall      float64 `default:"0.8" desc:"Clipping ratio above which curves are split"`
	Precision  int     `short:"p" default:"0" desc:"Decimal places in output, 0 for shortest exact"`
	Format     string  `short:"f" default:"text" desc:"Output format: text or geojson"`
	Verbose    bool    `short:"v" desc:"Log debug information to stderr"`
	Path       string  `index:"0" desc:"SVG path"`
}

type Solve struct {
	Precision    int    `short:"p" default:"0" desc:"Decimal places in output, 0 for shortest exact"`
	Coefficients string `index:"0" desc:"Comma-separated polynomial coefficients, highest degree first"`
}

func main() {
	root := argp.NewCmd(&Root{}, "Intersection of lines and Bézier curves")
	root.AddCmd(&Intersect{}, "intersect", "Intersect the curves of two SVG paths")
	root.AddCmd(&Self{}, "self", "Intersect the curves of an SVG path with each other")
	root.AddCmd(&Solve{}, "solve", "Find the real roots of a polynomial of degree 3 or less")
	root.Parse()
}

func (cmd *Root) Run() error {
	return argp.ShowUsage
}

func (cmd *Intersect) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *Intersect) run(w io.Writer) error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	a, err := parseCurves(cmd.A)
	if err != nil {
		return err
	}
	b, err := parseCurves(cmd.B)
	if err != nil {
		return err
	}
	opts := intersectOptions(cmd.Iterations, cmd.Stall)
	return writeIntersections(w, cmd.Format, cmd.Precision, bezclip.PathIntersectionsOpt(a, b, opts))
}

func (cmd *Self) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *Self) run(w io.Writer) error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)

	p, err := parseCurves(cmd.Path)
	if err != nil {
		return err
	}
	opts := intersectOptions(cmd.Iterations, cmd.Stall)
	return writeIntersections(w, cmd.Format, cmd.Precision, bezclip.SelfIntersectionsOpt(p, opts))
}

func (cmd *Solve) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *Solve) run(w io.Writer) error {
	if cmd.Coefficients == "" {
		return argp.ShowUsage
	}
	coeffs, err := parseCoefficients(cmd.Coefficients)
	if err != nil {
		return err
	}

	var roots []float64
	switch len(coeffs) {
	case 2:
		if x, ok := bezclip.SolveLinear(coeffs[0], coeffs[1]); ok {
			roots = append(roots, x)
		}
	case 3:
		xs, n := bezclip.SolveQuadratic(coeffs[0], coeffs[1], coeffs[2])
		roots = append(roots, xs[:n]...)
	case 4:
		xs, n := bezclip.SolveCubic(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
		roots = append(roots, xs[:n]...)
	default:
		return fmt.Errorf("expected 2 to 4 coefficients, got %d", len(coeffs))
	}

	slices.Sort(roots)
	for _, x := range roots {
		if _, err := fmt.Fprintln(w, formatNum(x, cmd.Precision)); err != nil {
			return err
		}
	}
	return nil
}

func setVerbose(verbose bool) {
	if !verbose {
		return
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	bezclip.SetLogger(slog.New(h))
}

func intersectOptions(iterations int, stall float64) bezclip.IntersectOptions {
	opts := bezclip.DefaultIntersectOptions
	opts.CollinearCheckIterations = iterations
	opts.StallRatio = stall
	return opts
}

func parseCurves(d string) ([]bezclip.Curve, error) {
	p, err := bezclip.ParseSVGPath(d)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", d, err)
	}
	return slices.Collect(p.Curves()), nil
}

func formatNum(f float64, prec int) string {
	if prec <= 0 {
		return fmt.Sprint(f)
	}
	return fmt.Sprintf("%.*f", prec, f)
}

func writeIntersections(w io.Writer, format string, prec int, is []bezclip.CurveIntersection) error {
	switch format {
	case "text":
		for _, i := range is {
			_, err := fmt.Fprintf(w, "%d %d %s %s %s %s\n",
				i.I, i.J,
				formatNum(i.S, prec), formatNum(i.T, prec),
				formatNum(i.Point.X, prec), formatNum(i.Point.Y, prec))
			if err != nil {
				return err
			}
		}
		return nil
	case "geojson":
		fc := geojson.NewFeatureCollection()
		for _, i := range is {
			f := geojson.NewFeature(orb.Point{i.Point.X, i.Point.Y})
			f.Properties["i"] = i.I
			f.Properties["j"] = i.J
			f.Properties["s"] = i.S
			f.Properties["t"] = i.T
			fc.Append(f)
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
