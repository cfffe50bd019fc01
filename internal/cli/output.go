package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quartal/quartal"
)

// report is a command result printable as text or YAML.
type report interface {
	text() string
}

// emit writes r to the command's output in the configured format.
func (a *app) emit(cmd *cobra.Command, r report) error {
	w := cmd.OutOrStdout()
	if a.cfg.Format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}
	_, err := io.WriteString(w, r.text())

	return err
}

// render prints s with or without the inner beat space, per insert_space.
func (a *app) render(s *quartal.Sequence) string {
	if a.cfg.InsertSpace {
		return s.String()
	}

	return s.Compact()
}

// sequenceReport is the result of one algebra command.
type sequenceReport struct {
	Operation string `yaml:"operation"`
	Alphabet  string `yaml:"alphabet"`
	Result    string `yaml:"result"`
	Bits      string `yaml:"bits"`
}

func (r sequenceReport) text() string { return r.Result + "\n" }

// newSequenceReport fills a sequenceReport from s.
func (a *app) newSequenceReport(op string, s *quartal.Sequence) sequenceReport {
	return sequenceReport{
		Operation: op,
		Alphabet:  a.abc.Name().String(),
		Result:    a.render(s),
		Bits:      s.ToBinary().String(),
	}
}

// lines joins key/value pairs as aligned "key: value" lines.
func lines(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%-*s %s\n", width+1, p[0]+":", p[1])
	}

	return b.String()
}
