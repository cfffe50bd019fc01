package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quartal/numeral"
	"github.com/katalvlaran/quartal/quartal"
)

type clusterReport struct {
	Alphabet string     `yaml:"alphabet"`
	Classes  [][]string `yaml:"classes"`
	Merged   []string   `yaml:"merged"`
}

func (r clusterReport) text() string {
	if len(r.Merged) == 0 {
		return ""
	}

	return strings.Join(r.Merged, "\n") + "\n"
}

func (a *app) clusterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <bits>...",
		Short: "Group rhythms that are rotations of each other by whole groups",
		Long: `Cluster writes each bit-string rhythm as a quartal sequence, groups the
sequences that are rotations of one another by a whole number of groups,
and prints one OR-merged sequence per class, newest class first.`,
		Example: `  quartal --alphabet binary cluster 10001010 10101000 11000000`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			rhythms := make([]*numeral.Binary, len(args))
			for i, arg := range args {
				b, err := numeral.ParseBinary(arg)
				if err != nil {
					return fmt.Errorf("cluster: rhythm %d: %w", i+1, err)
				}
				rhythms[i] = b
			}
			seqs, err := quartal.FromBinaries(a.abc, rhythms)
			if err != nil {
				return fmt.Errorf("cluster: %w", err)
			}

			c := quartal.NewClusterer()
			for _, s := range seqs {
				if err = c.Add(s); err != nil {
					return fmt.Errorf("cluster: %w", err)
				}
			}
			merged, err := c.Emit()
			if err != nil {
				return fmt.Errorf("cluster: %w", err)
			}

			r := clusterReport{Alphabet: a.abc.Name().String()}
			for i, class := range c.Classes() {
				members := make([]string, len(class))
				for j, m := range class {
					members[j] = a.render(m)
				}
				logger.Debug("class", "index", i, "members", len(members))
				r.Classes = append(r.Classes, members)
			}
			for _, m := range merged {
				r.Merged = append(r.Merged, a.render(m))
			}
			p.done("clustered", "rhythms", len(seqs), "classes", c.Len())

			return a.emit(cmd, r)
		},
	}
}
