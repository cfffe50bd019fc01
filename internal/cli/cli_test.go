package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quartal/alphabet"
	"github.com/katalvlaran/quartal/dtw"
	"github.com/katalvlaran/quartal/hadamard"
	"github.com/katalvlaran/quartal/numeral"
	"github.com/katalvlaran/quartal/quartal"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

// writeConfig writes a TOML file into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quartal.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestAlgebraCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"and", []string{"--alphabet", "binary", "op", "and", "1100 1010", "1010 1010"}, "10 00 10 10\n"},
		{"or", []string{"--alphabet", "binary", "op", "or", "1100 1010", "1010 1010"}, "11 10 10 10\n"},
		{"xor upper case", []string{"--alphabet", "bin", "op", "XOR", "1100 1010", "1010 1010"}, "01 10 00 00\n"},
		{"minus", []string{"--alphabet", "2", "op", "minus", "1100 1010", "1010 1010"}, "01 00 00 00\n"},
		{"hex default", []string{"op", "or", "8000", "0001"}, "80 01\n"},
		{"broadcast", []string{"--alphabet", "binary", "op", "and", "1000", "1111 0000 1111 0000"}, "10 00 00 00 10 00 00 00\n"},
		{"not", []string{"--alphabet", "binary", "not", "1100 1010"}, "00 11 01 01\n"},
		{"rotate", []string{"--alphabet", "binary", "rotate", "1000 0000", "1"}, "00 00 00 01\n"},
		{"rotate negative", []string{"--alphabet", "binary", "rotate", "--", "1000 0000", "-1"}, "01 00 00 00\n"},
		{"expand", []string{"--alphabet", "binary", "expand", "1001", "2"}, "10 00 00 10\n"},
		{"expand fill", []string{"--alphabet", "binary", "expand", "--fill", "1001", "2"}, "11 00 00 11\n"},
		{"convolve", []string{"--alphabet", "binary", "convolve", "0001 0001", "0000 0011"}, "00 11 00 11\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestAlgebraErrors(t *testing.T) {
	_, _, err := run(t, "op", "nand", "0000", "0000")
	require.ErrorIs(t, err, ErrUnknownOperation)

	_, _, err = run(t, "--alphabet", "binary", "op", "and", "100", "1000")
	require.ErrorIs(t, err, quartal.ErrInvalidLength)

	_, _, err = run(t, "--alphabet", "binary", "not", "1021")
	require.ErrorIs(t, err, numeral.ErrInvalidDigit)

	_, _, err = run(t, "rotate", "8000", "x")
	require.ErrorIs(t, err, quartal.ErrInvalidArgument)

	_, _, err = run(t, "expand", "8000", "0")
	require.ErrorIs(t, err, quartal.ErrInvalidArgument)

	_, _, err = run(t, "op", "and", "8000")
	require.Error(t, err)
}

func TestSequenceYAML(t *testing.T) {
	out, _, err := run(t, "--alphabet", "binary", "--format", "yaml", "op", "and", "1100 1010", "1010 1010")
	require.NoError(t, err)

	var r sequenceReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, sequenceReport{
		Operation: "and",
		Alphabet:  "binary",
		Result:    "10 00 10 10",
		Bits:      "10001010",
	}, r)
}

func TestAnalyze(t *testing.T) {
	out, _, err := run(t, "--alphabet", "binary", "--format", "yaml", "analyze", "1010")
	require.NoError(t, err)

	var r analyzeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "1010", r.Rhythm)
	assert.Equal(t, 4, r.Steps)
	assert.Equal(t, []int{1, 3}, r.Onsets)
	assert.Equal(t, []int{0, 1}, r.IntervalVector)
	assert.Equal(t, r.IntervalVector, r.Spectrum)
	assert.Equal(t, []int{2, 2}, r.Composition)
	assert.Equal(t, []int{0, 0}, r.Contour)
	assert.Equal(t, "10 10", r.Quartal)

	b, _ := numeral.ParseBinary("1010")
	assert.Equal(t, b.HomogeneityRegions(), r.Regions)
}

func TestAnalyze_Text(t *testing.T) {
	out, _, err := run(t, "analyze", "1010")
	require.NoError(t, err)
	assert.Contains(t, out, "rhythm:")
	assert.Contains(t, out, "interval vector: [0 1]")
	assert.NotContains(t, out, "quartal:", "4 steps do not fill a hexadecimal group")

	_, _, err = run(t, "analyze", "10x1")
	require.ErrorIs(t, err, numeral.ErrInvalidDigit)
}

func TestCluster(t *testing.T) {
	out, _, err := run(t, "--alphabet", "binary", "cluster", "10001010", "10101000", "11000000")
	require.NoError(t, err)
	assert.Equal(t, "11 00 00 00\n10 10 10 10\n", out)

	out, _, err = run(t, "--alphabet", "binary", "--format", "yaml", "cluster", "10001010", "10101000", "11000000")
	require.NoError(t, err)
	var r clusterReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, [][]string{{"10 00 10 10", "10 10 10 00"}, {"11 00 00 00"}}, r.Classes)
	assert.Equal(t, []string{"11 00 00 00", "10 10 10 10"}, r.Merged)

	_, _, err = run(t, "--alphabet", "binary", "cluster", "100")
	require.ErrorIs(t, err, quartal.ErrInvalidLength)
}

func TestHadamard(t *testing.T) {
	out, _, err := run(t, "hadamard", "2")
	require.NoError(t, err)
	assert.Equal(t, "++++ 0\n+-+- 3\n++-- 1\n+--+ 2\n", out)

	out, _, err = run(t, "hadamard", "2", "--sequency")
	require.NoError(t, err)
	assert.Equal(t, "++++ 0\n++-- 1\n+--+ 2\n+-+- 3\n", out)

	out, _, err = run(t, "--format", "yaml", "hadamard", "1")
	require.NoError(t, err)
	var r hadamardReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, hadamardReport{Order: 1, Size: 2, Rows: [][]int{{1, 1}, {1, -1}}, Sequency: []int{0, 1}}, r)

	_, _, err = run(t, "hadamard", "0")
	require.ErrorIs(t, err, hadamard.ErrInvalidOrder)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "alphabet = \"binary\"\ninsert_space = false\n")
	out, _, err := run(t, "--config", path, "op", "and", "1100 1010", "1010 1010")
	require.NoError(t, err)
	assert.Equal(t, "1000 1010\n", out)

	out, _, err = run(t, "--config", path, "--alphabet", "hex", "not", "F0F0")
	require.NoError(t, err)
	assert.Equal(t, "0F0F\n", out, "flag overrides the file")
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "--config", writeConfig(t, "colour = \"red\"\n"), "hadamard", "1")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "--config", writeConfig(t, "format = \"json\"\n"), "hadamard", "1")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = run(t, "--alphabet", "base64", "hadamard", "1")
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, alphabet.ErrUnknownAlphabet)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "hadamard", "1")
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, "format = \"yaml\"\nverbose = true\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Alphabet: "hexadecimal", Format: FormatYAML, InsertSpace: true, Verbose: true}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := run(t, "hadamard", "1")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, errOut, err = run(t, "-v", "hadamard", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configured")
	assert.Contains(t, errOut, "built")

	_, errOut, err = run(t, "--config", writeConfig(t, "verbose = true\n"), "hadamard", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "built")
}

func TestDistance(t *testing.T) {
	out, _, err := run(t, "distance", "10010010", "100100100010")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = run(t, "distance", "--path", "10010010", "100100100010")
	require.NoError(t, err)
	assert.Equal(t, "1\n[[0 0] [0 1] [1 2] [2 3]]\n", out)

	out, _, err = run(t, "--format", "yaml", "distance", "10010010", "100100100010")
	require.NoError(t, err)
	var r distanceReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, []int{3, 3, 2}, r.SeriesA)
	assert.Equal(t, []int{4, 3, 3, 2}, r.SeriesB)
	assert.Equal(t, 1.0, r.Distance)
	assert.Empty(t, r.Path)

	_, _, err = run(t, "distance", "10010010", "0000")
	require.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, _, err = run(t, "distance", "--window", "-3", "10010010", "1001")
	require.ErrorIs(t, err, dtw.ErrBadInput)
}
