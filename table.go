package genotypefasta

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// Table holds raw genotype calls, one row per site and one column per
// individual. Rows may be ragged; cells past the end of a short row are
// treated as absent.
type Table struct {
	Rows  [][]string
	width int
}

// Append adds a site to the bottom of the table.
func (t *Table) Append(row []string) {
	if len(row) > t.width {
		t.width = len(row)
	}
	t.Rows = append(t.Rows, row)
}

// Sites is the number of rows.
func (t *Table) Sites() int {
	return len(t.Rows)
}

// Width is the length of the longest row, which is the number of columns
// (individuals, plus any trailing empty column).
func (t *Table) Width() int {
	return t.width
}

// OccupiedColumns counts the columns holding at least one non-empty cell.
// These are the columns that become FASTA records.
func (t *Table) OccupiedColumns() int {
	occupied := make([]bool, t.width)
	n := 0
	for _, row := range t.Rows {
		for column, call := range row {
			if call != "" && !occupied[column] {
				occupied[column] = true
				n++
			}
		}
	}

	return n
}

// Cell returns the raw call at (site, column), or "" if the row is too short.
func (t *Table) Cell(site, column int) string {
	row := t.Rows[site]
	if column >= len(row) {
		return ""
	}

	return row[column]
}

// Transpose flips the table so that each returned row is one individual, with
// calls in site order. Absent cells become "".
func (t *Table) Transpose() [][]string {
	out := make([][]string, t.width)
	for column := range out {
		out[column] = make([]string, len(t.Rows))
		for site := range t.Rows {
			out[column][site] = t.Cell(site, column)
		}
	}

	return out
}

// TableReader reads a genotype table one site at a time. Lines starting with
// '#' are skipped, as are blank lines. A call may be quoted, but it may not
// span lines or contain the delimiter.
type TableReader struct {
	r     *csv.Reader
	delim rune
	err   error
}

func NewTableReader(r io.Reader, delim rune) *TableReader {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1

	return &TableReader{r: cr, delim: delim}
}

func (t *TableReader) Err() error {
	return t.err
}

// Read returns the next site's calls. It returns nil at the end of input or on
// error; check Err to tell them apart.
func (t *TableReader) Read() []string {
	if t.err != nil {
		return nil
	}

	row, err := t.r.Read()
	if err == io.EOF {
		return nil
	} else if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			t.err = fmt.Errorf("%w: line %d: %v", ErrMalformedInput, pe.StartLine, pe.Err)
		} else {
			t.err = pfx.Err(err)
		}
		return nil
	}

	for i, cell := range row {
		if strings.ContainsAny(cell, "\r\n") || strings.ContainsRune(cell, t.delim) {
			line, _ := t.r.FieldPos(i)
			t.err = fmt.Errorf("%w: line %d: column %d holds %q, which spans lines or contains the delimiter", ErrMalformedInput, line, i+1, cell)
			return nil
		}
	}

	return row
}

// ReadTable loads an entire genotype table into memory.
func ReadTable(r io.Reader, delim rune) (*Table, error) {
	tr := NewTableReader(r, delim)
	table := &Table{}
	for row := tr.Read(); row != nil; row = tr.Read() {
		table.Append(row)
	}

	if err := tr.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
