package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/quartal"
)

// ErrUnknownOperation is returned by op for an operator it does not know.
var ErrUnknownOperation = errors.New("cli: unknown operation")

// binaryOps maps op names to the element-wise quartal operators.
var binaryOps = map[string]func(a, b *quartal.Sequence) (*quartal.Sequence, error){
	"and":   quartal.And,
	"or":    quartal.Or,
	"xor":   quartal.Xor,
	"minus": quartal.Minus,
}

// opNames lists binaryOps keys in a fixed order for help and errors.
func opNames() []string {
	names := make([]string, 0, len(binaryOps))
	for k := range binaryOps {
		names = append(names, k)
	}
	slices.Sort(names)

	return names
}

// parse reads quartal text in the configured alphabet.
func (a *app) parse(text string) (*quartal.Sequence, error) {
	return quartal.Parse(a.abc, text)
}

func (a *app) parseAll(texts ...string) ([]*quartal.Sequence, error) {
	out := make([]*quartal.Sequence, len(texts))
	for i, t := range texts {
		s, err := a.parse(t)
		if err != nil {
			return nil, fmt.Errorf("operand %d %q: %w", i+1, t, err)
		}
		out[i] = s
	}

	return out, nil
}

func (a *app) opCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "op <" + strings.Join(opNames(), "|") + "> <A> <B>",
		Short: "Combine two quartal sequences group by group",
		Long: `Op applies a bitwise operator group by group. When the sequences differ in
length the shorter one is repeated cyclically, so a single group acts as a
pattern over a longer sequence.`,
		Example: `  quartal op or "88 88" "00 0F"
  quartal --alphabet binary op and "1100 1010" "1010 1010"`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: opNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			fn, ok := binaryOps[name]
			if !ok {
				return fmt.Errorf("op %q, want one of %v: %w", args[0], opNames(), ErrUnknownOperation)
			}
			seqs, err := a.parseAll(args[1], args[2])
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out, err := fn(seqs[0], seqs[1])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("combined", "op", name, "groups", out.Len())

			return a.emit(cmd, a.newSequenceReport(name, out))
		},
	}
}

func (a *app) notCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "not <A>",
		Short: "Swap onsets and rests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return fmt.Errorf("not: %w", err)
			}

			return a.emit(cmd, a.newSequenceReport("not", quartal.Not(s)))
		},
	}
}

func (a *app) rotateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <A> <steps>",
		Short: "Rotate the rhythm by a number of steps",
		Long: `Rotate moves every onset the given number of steps towards the most
significant end, wrapping around. Use "--" before a negative step count.`,
		Example: `  quartal --alphabet binary rotate "1000 0000" 1
  quartal rotate -- "8000" -4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return fmt.Errorf("rotate: %w", err)
			}
			t, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rotate: steps %q: %w", args[1], quartal.ErrInvalidArgument)
			}

			return a.emit(cmd, a.newSequenceReport("rotate", quartal.Rotate(s, t)))
		},
	}
}

func (a *app) expandCommand() *cobra.Command {
	var fill bool
	cmd := &cobra.Command{
		Use:   "expand <A> <factor>",
		Short: "Stretch the rhythm by an integer factor",
		Long: `Expand turns every step into a block of factor steps. An onset keeps the
first step of its block as printed; with --fill the whole block is held.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parse(args[0])
			if err != nil {
				return fmt.Errorf("expand: %w", err)
			}
			factor, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("expand: factor %q: %w", args[1], quartal.ErrInvalidArgument)
			}
			out, err := quartal.Expand(s, factor, fill)
			if err != nil {
				return err
			}

			return a.emit(cmd, a.newSequenceReport("expand", out))
		},
	}
	cmd.Flags().BoolVar(&fill, "fill", false, "hold each onset until the next slot")

	return cmd
}

func (a *app) convolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convolve <carrier> <impulse>",
		Short: "Place the impulse at every onset of the carrier",
		Long: `Convolve stamps a copy of the impulse rhythm at every onset of the carrier,
on a cycle as long as the carrier. Overlapping onsets merge.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := a.parseAll(args[0], args[1])
			if err != nil {
				return fmt.Errorf("convolve: %w", err)
			}
			out, err := quartal.Convolve(seqs[0], seqs[1])
			if err != nil {
				return err
			}

			return a.emit(cmd, a.newSequenceReport("convolve", out))
		},
	}
}
