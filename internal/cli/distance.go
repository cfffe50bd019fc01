package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/dtw"
	"github.com/katalvlaran/quartal/numeral"
)

type distanceReport struct {
	A        string  `yaml:"a"`
	B        string  `yaml:"b"`
	SeriesA  []int   `yaml:"gaps_a,flow"`
	SeriesB  []int   `yaml:"gaps_b,flow"`
	Distance float64 `yaml:"distance"`
	Path     [][]int `yaml:"path,flow,omitempty"`
}

func (r distanceReport) text() string {
	out := strconv.FormatFloat(r.Distance, 'g', -1, 64) + "\n"
	if len(r.Path) > 0 {
		out += fmt.Sprint(r.Path) + "\n"
	}

	return out
}

func (a *app) distanceCommand() *cobra.Command {
	opts := dtw.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "distance <bits> <bits>",
		Short: "Dynamic time warping distance between two rhythms",
		Long: `Distance aligns the gap sequences (compositions) of two bit-string rhythms
with dynamic time warping and prints the cumulative gap difference. With
--path the aligned gap indices are printed too.`,
		Example: `  quartal distance 10010010 100100100010 --path`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rhythms := make([]*numeral.Binary, 2)
			for i, arg := range args {
				b, err := numeral.ParseBinary(arg)
				if err != nil {
					return fmt.Errorf("distance: rhythm %d: %w", i+1, err)
				}
				rhythms[i] = b
			}
			if opts.ReturnPath {
				opts.MemoryMode = dtw.FullMatrix
			}
			d, path, err := dtw.RhythmDistance(rhythms[0], rhythms[1], &opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("warped", "window", opts.Window, "penalty", opts.SlopePenalty, "path", len(path))

			r := distanceReport{
				A:        rhythms[0].String(),
				B:        rhythms[1].String(),
				SeriesA:  rhythms[0].Composition(),
				SeriesB:  rhythms[1].Composition(),
				Distance: d,
			}
			for _, c := range path {
				r.Path = append(r.Path, []int{c.I, c.J})
			}

			return a.emit(cmd, r)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Window, "window", dtw.NoWindow, "Sakoe-Chiba band width (-1 = unconstrained)")
	f.Float64Var(&opts.SlopePenalty, "penalty", 0, "cost of every stretch step")
	f.BoolVar(&opts.ReturnPath, "path", false, "also print the alignment path")

	return cmd
}
