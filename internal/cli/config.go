package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/quartal/alphabet"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is returned for unknown config keys or bad values.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config holds the CLI defaults. It is read from an optional TOML file and
// then overridden by explicitly set flags.
//
//	alphabet     = "hexadecimal"   # binary | octal | hexadecimal (or bin, oct, hex, 2, 8, 16)
//	format       = "text"          # text | yaml
//	insert_space = true            # "88 88" instead of "8888" inside a group
//	verbose      = false
type Config struct {
	Alphabet    string `toml:"alphabet"`
	Format      string `toml:"format"`
	InsertSpace bool   `toml:"insert_space"`
	Verbose     bool   `toml:"verbose"`
}

// DefaultConfig is used when no file is given and for keys a file omits.
func DefaultConfig() Config {
	return Config{
		Alphabet:    alphabet.Hexadecimal.String(),
		Format:      FormatText,
		InsertSpace: true,
	}
}

// LoadConfig decodes path over DefaultConfig. An empty path yields the
// defaults. Keys the file sets but Config does not know are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
	}

	return cfg, nil
}

// Validate checks the format and resolves the alphabet name.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	if _, err := alphabet.ParseName(c.Alphabet); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// digitAlphabet returns the registered alphabet named by c; Validate must
// have passed.
func (c Config) digitAlphabet() *alphabet.Alphabet {
	name, _ := alphabet.ParseName(c.Alphabet)

	return alphabet.MustLookup(name)
}
