package dtw

import (
	"fmt"

	"github.com/katalvlaran/quartal/numeral"
)

// Series is the time series DTW compares for a rhythm: its composition
// (gaps between consecutive onsets) as float64.
func Series(b *numeral.Binary) []float64 {
	comp := b.Composition()
	out := make([]float64, len(comp))
	for i, g := range comp {
		out[i] = float64(g)
	}

	return out
}

// RhythmDistance warps the compositions of a and b onto each other and
// returns the DTW distance (and, with opts.ReturnPath, the gap alignment).
// Rhythms of different lengths or onset counts are comparable; a rhythm
// without onsets is not (ErrEmptyInput).
func RhythmDistance(a, b *numeral.Binary, opts *Options) (float64, []Coord, error) {
	d, path, err := DTW(Series(a), Series(b), opts)
	if err != nil {
		return 0, nil, fmt.Errorf("RhythmDistance(%s, %s): %w", a, b, err)
	}

	return d, path, nil
}
