package genotypefasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// ReadNames reads one sample name per line, as printed by `bcftools query -l`.
// A blank line leaves that column unnamed. Trailing blank lines are dropped.
func ReadNames(r io.Reader) ([]string, error) {
	out := make([]string, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out = append(out, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return out, nil
}
