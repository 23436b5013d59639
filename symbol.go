package genotypefasta

// GapSymbol is emitted for missing calls, wildcard alleles and absent cells.
const GapSymbol = '-'

// symbols maps a raw diploid genotype call, as printed by `bcftools query
// -f '[%TGT\t]\n'`, to its IUPAC code. Heterozygous calls are listed in both
// allele orders.
var symbols = map[string]byte{
	// Heterozygous
	"T/A": 'W', "A/T": 'W',
	"C/G": 'S', "G/C": 'S',
	"A/G": 'R', "G/A": 'R',
	"A/C": 'M', "C/A": 'M',
	"G/T": 'K', "T/G": 'K',
	"C/T": 'Y', "T/C": 'Y',

	// Homozygous
	"A/A": 'A',
	"C/C": 'C',
	"G/G": 'G',
	"T/T": 'T',

	// Missing, or a spanning deletion in one allele
	"./.": GapSymbol,
	"A/*": GapSymbol,
	"C/*": GapSymbol,
	"G/*": GapSymbol,
	"T/*": GapSymbol,
}

// EncodeCall returns the single-character symbol for call. The lookup is an
// exact string match; ok is false when call is not a recognized genotype.
func EncodeCall(call string) (symbol byte, ok bool) {
	symbol, ok = symbols[call]
	return symbol, ok
}

// KnownCalls returns every genotype call EncodeCall recognizes.
func KnownCalls() []string {
	out := make([]string, 0, len(symbols))
	for call := range symbols {
		out = append(out, call)
	}

	return out
}
