package genotypefasta

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultInputPath  = "file1.txt"
	DefaultOutputPath = "file2.fasta"

	DelimiterTab  = "tab"
	DelimiterAuto = "auto"
)

// Config describes one conversion run. Relative paths are resolved against the
// working directory.
type Config struct {
	InputPath  string
	OutputPath string

	// Delimiter is "tab", "auto", or a single literal character.
	Delimiter string

	Unknown UnknownPolicy

	// Prefix for generated record names.
	Prefix string

	// NamesPath optionally points at a file with one sample name per line, in
	// input column order.
	NamesPath string
}

func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Delimiter:  DelimiterTab,
		Unknown:    UnknownGap,
		Prefix:     DefaultPrefix,
	}
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrConfig)
	}
	if IsGoogleStoragePath(c.OutputPath) {
		return fmt.Errorf("%w: output %s: only local output paths are supported", ErrConfig, c.OutputPath)
	}
	if _, exists := unknownPolicyNames[c.Unknown]; !exists {
		return fmt.Errorf("%w: %v", ErrConfig, c.Unknown)
	}
	if strings.ContainsAny(c.Prefix, "\r\n") {
		return fmt.Errorf("%w: prefix %q contains a line break", ErrConfig, c.Prefix)
	}

	switch c.Delimiter {
	case DelimiterTab, DelimiterAuto, "":
		return nil
	}

	if _, err := literalDelimiter(c.Delimiter); err != nil {
		return err
	}

	return nil
}

// delimiterFor resolves the configured delimiter, sniffing sample when it is
// "auto".
func (c Config) delimiterFor(sample []byte) (rune, error) {
	switch c.Delimiter {
	case DelimiterTab, "":
		return '\t', nil
	case DelimiterAuto:
		return detectTableDelimiter(sample), nil
	}

	return literalDelimiter(c.Delimiter)
}

func literalDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character, %q or %q", ErrConfig, s, DelimiterTab, DelimiterAuto)
	}

	// encoding/csv rejects these
	if r == '"' || r == '\r' || r == '\n' || r == '#' {
		return 0, fmt.Errorf("%w: delimiter %q is not usable", ErrConfig, s)
	}

	return r, nil
}
