package genotypefasta

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultPrefix names records individual_1, individual_2, ...
const DefaultPrefix = "individual_"

// Record is one FASTA entry.
type Record struct {
	Name     string
	Sequence string
}

// Encoder turns a genotype table into one sequence per individual.
type Encoder struct {
	Unknown UnknownPolicy

	// Prefix is followed by a 1-based counter of emitted records to form a
	// record name.
	Prefix string

	// Names, if set, overrides the record name for the column at the same
	// 0-based index. Empty entries fall back to Prefix.
	Names []string

	unrecognized map[string]int
}

func NewEncoder(unknown UnknownPolicy) *Encoder {
	return &Encoder{
		Unknown:      unknown,
		Prefix:       DefaultPrefix,
		unrecognized: make(map[string]int),
	}
}

// Encode maps one raw call to the text it contributes to a sequence.
func (e *Encoder) Encode(call string) (string, error) {
	if symbol, ok := EncodeCall(call); ok {
		return string(symbol), nil
	}

	if e.unrecognized == nil {
		e.unrecognized = make(map[string]int)
	}
	e.unrecognized[call]++

	switch e.Unknown {
	case UnknownPassthrough:
		return call, nil
	case UnknownError:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedCall, call)
	}

	return string(GapSymbol), nil
}

// Sequences transposes t and encodes each individual's calls in site order.
// Columns with no calls at all, such as the one created by a trailing
// delimiter, produce no record and do not advance the record counter. An
// empty cell in any other column is a gap, except under UnknownPassthrough,
// where it contributes nothing.
func (e *Encoder) Sequences(t *Table) ([]Record, error) {
	columns := t.Transpose()
	out := make([]Record, 0, len(columns))

	var sb strings.Builder
	for column, calls := range columns {
		if allAbsent(calls) {
			continue
		}

		sb.Reset()
		sb.Grow(len(calls))
		for site, call := range calls {
			if call == "" {
				// Passthrough keeps the empty cell empty; the other
				// policies hold one symbol per site.
				if e.Unknown != UnknownPassthrough {
					sb.WriteByte(GapSymbol)
				}
				continue
			}

			symbol, err := e.Encode(call)
			if err != nil {
				return nil, fmt.Errorf("site %d, column %d: %w", site+1, column+1, err)
			}
			sb.WriteString(symbol)
		}

		out = append(out, Record{
			Name:     e.name(column, len(out)+1),
			Sequence: sb.String(),
		})
	}

	return out, nil
}

func (e *Encoder) name(column, n int) string {
	if column < len(e.Names) && e.Names[column] != "" {
		return e.Names[column]
	}

	return e.Prefix + strconv.Itoa(n)
}

// Unrecognized reports how often each unrecognized call was seen.
func (e *Encoder) Unrecognized() map[string]int {
	out := make(map[string]int, len(e.unrecognized))
	for call, count := range e.unrecognized {
		out[call] = count
	}

	return out
}

// UnrecognizedCalls lists the distinct unrecognized calls, most frequent first.
func (e *Encoder) UnrecognizedCalls() []string {
	out := make([]string, 0, len(e.unrecognized))
	for call := range e.unrecognized {
		out = append(out, call)
	}

	sort.Slice(out, func(i, j int) bool {
		if e.unrecognized[out[i]] != e.unrecognized[out[j]] {
			return e.unrecognized[out[i]] > e.unrecognized[out[j]]
		}
		return out[i] < out[j]
	})

	return out
}

func allAbsent(calls []string) bool {
	for _, call := range calls {
		if call != "" {
			return false
		}
	}

	return true
}
