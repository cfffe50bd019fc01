package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/numeral"
	"github.com/katalvlaran/quartal/quartal"
)

type analyzeReport struct {
	Rhythm         string   `yaml:"rhythm"`
	Steps          int      `yaml:"steps"`
	Onsets         []int    `yaml:"onsets,flow"`
	IntervalVector []int    `yaml:"interval_vector,flow"`
	Spectrum       []int    `yaml:"spectrum,flow"`
	Composition    []int    `yaml:"composition,flow"`
	Regions        []int    `yaml:"homogeneity_regions,flow"`
	Parts          []string `yaml:"homogeneous_parts,omitempty"`
	Contour        []int    `yaml:"contour,flow"`
	ShadowContour  []int    `yaml:"shadow_contour,flow"`
	Quartal        string   `yaml:"quartal,omitempty"`
}

func (r analyzeReport) text() string {
	pairs := [][2]string{
		{"rhythm", r.Rhythm},
		{"steps", strconv.Itoa(r.Steps)},
		{"onsets", fmt.Sprint(r.Onsets)},
		{"interval vector", fmt.Sprint(r.IntervalVector)},
		{"spectrum", fmt.Sprint(r.Spectrum)},
		{"composition", fmt.Sprint(r.Composition)},
		{"regions", fmt.Sprint(r.Regions)},
	}
	for _, p := range r.Parts {
		pairs = append(pairs, [2]string{"part", p})
	}
	pairs = append(pairs,
		[2]string{"contour", fmt.Sprint(r.Contour)},
		[2]string{"shadow contour", fmt.Sprint(r.ShadowContour)},
	)
	if r.Quartal != "" {
		pairs = append(pairs, [2]string{"quartal", r.Quartal})
	}

	return lines(pairs...)
}

func (a *app) analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <bits>",
		Short: "Print the descriptors of a binary rhythm",
		Long: `Analyze reads a rhythm as a bit string, most significant bit first (bit i
is the onset at step i), and prints its onsets, interval vector, spectrum,
composition, homogeneity regions with their decomposition, contours, and,
when the length allows, its quartal form in the configured alphabet.`,
		Example: `  quartal analyze 10010010
  quartal --alphabet binary --format yaml analyze 10001010`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			b, err := numeral.ParseBinary(args[0])
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			r := analyzeReport{
				Rhythm:         b.String(),
				Steps:          b.Len(),
				Onsets:         b.Onsets(),
				IntervalVector: b.IntervalVector(),
				Spectrum:       numeral.Spectrum(b),
				Composition:    b.Composition(),
				Regions:        b.HomogeneityRegions(),
				Contour:        b.Contour(),
				ShadowContour:  b.ShadowContour(),
			}
			for _, p := range b.DecomposeHomogeneousRegions() {
				r.Parts = append(r.Parts, p.String())
			}
			if s, err := quartal.FromBinary(a.abc, b); err == nil {
				r.Quartal = a.render(s)
			} else {
				logger.Debug("no quartal form", "steps", b.Len(), "err", err)
			}

			return a.emit(cmd, r)
		},
	}
}
