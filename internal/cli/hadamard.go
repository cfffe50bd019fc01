package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/hadamard"
)

type hadamardReport struct {
	Order    int     `yaml:"order"`
	Size     int     `yaml:"size"`
	Walsh    bool    `yaml:"sequency_ordered"`
	Rows     [][]int `yaml:"rows,flow"`
	Sequency []int   `yaml:"sequency,flow"`
}

// text prints each row as a +/- pattern followed by its sequency.
func (r hadamardReport) text() string {
	var b strings.Builder
	for i, row := range r.Rows {
		for _, v := range row {
			if v > 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
		}
		fmt.Fprintf(&b, " %d\n", r.Sequency[i])
	}

	return b.String()
}

func (a *app) hadamardCommand() *cobra.Command {
	var walsh bool
	cmd := &cobra.Command{
		Use:   "hadamard <order>",
		Short: "Print the Sylvester Hadamard matrix of the given order",
		Long: `Hadamard prints H(order), the 2^order x 2^order Sylvester matrix, one row per
line as a +/- pattern followed by the row's sequency (number of sign
changes). With --sequency the rows are sorted by sequency (Walsh order).`,
		Example: `  quartal hadamard 3 --sequency`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("hadamard: order %q: %w", args[0], hadamard.ErrInvalidOrder)
			}
			h, err := hadamard.Sylvester(order)
			if err != nil {
				return err
			}
			if walsh {
				if h, err = hadamard.SortBySequency(h); err != nil {
					return err
				}
			}
			loggerFromContext(cmd.Context()).Debug("built", "order", hadamard.Order(h), "size", h.Rows())

			r := hadamardReport{Order: order, Size: h.Rows(), Walsh: walsh}
			for _, row := range h.ToRows() {
				ints := make([]int, len(row))
				for j, v := range row {
					ints[j] = int(v)
				}
				r.Rows = append(r.Rows, ints)
				r.Sequency = append(r.Sequency, hadamard.Sequency(row))
			}

			return a.emit(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&walsh, "sequency", false, "sort rows by ascending sequency")

	return cmd
}
