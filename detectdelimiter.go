package genotypefasta

import (
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// sniffBytes bounds how much of a table is examined for its delimiter.
const sniffBytes = 64 << 10

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader. bcftools genotype tables are tab-delimited, so tab is
// the fallback when nothing else stands out.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// detectTableDelimiter sniffs the delimiter of a genotype table. Every call
// carries a '/' or '|' between its alleles, which would otherwise look like
// the most regular separator on each line, so allele punctuation is masked
// out first.
func detectTableDelimiter(sample []byte) rune {
	if len(sample) > sniffBytes {
		sample = sample[:sniffBytes]
	}

	masked := bytes.Map(func(r rune) rune {
		switch r {
		case '/', '|', '.', '*':
			return 'N'
		}
		return r
	}, sample)

	delim := DetermineDelimiter(bytes.NewReader(masked))

	// A space-delimited table can come back as the tab fallback.
	if delim == '\t' && !bytes.ContainsRune(masked, '\t') && bytes.ContainsRune(masked, ' ') {
		return ' '
	}

	return delim
}
