package main

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// parseCoefficients parses numbers separated by commas or whitespace.
func parseCoefficients(s string) ([]float64, error) {
	b := []byte(s)
	var out []float64
	i := 0
	for {
		for i < len(b) && (b[i] == ',' || b[i] == ' ' || b[i] == '\t') {
			i++
		}
		if i == len(b) {
			return out, nil
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("invalid coefficient at offset %d in %q", i, s)
		}
		out = append(out, f)
		i += n
		if i < len(b) && b[i] != ',' && b[i] != ' ' && b[i] != '\t' {
			return nil, fmt.Errorf("invalid coefficient at offset %d in %q", i, s)
		}
	}
}
