package genotypefasta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Summary describes a finished conversion.
type Summary struct {
	Sites          int
	Columns        int
	Records        int
	SkippedColumns int

	// Unrecognized counts each genotype call that had no IUPAC symbol.
	Unrecognized map[string]int
}

// UnrecognizedTotal is the number of cells holding an unrecognized call.
func (s Summary) UnrecognizedTotal() int {
	total := 0
	for _, count := range s.Unrecognized {
		total += count
	}

	return total
}

// Convert reads the genotype table at cfg.InputPath and writes one FASTA record
// per individual to cfg.OutputPath. The whole table is encoded before the
// output is created, so input and encoding failures leave no output file
// behind. client is only needed for gs:// paths.
func Convert(ctx context.Context, cfg Config, client *storage.Client) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	data, err := readAll(ctx, cfg.InputPath, client)
	if err != nil {
		return Summary{}, err
	}

	delim, err := cfg.delimiterFor(data)
	if err != nil {
		return Summary{}, err
	}

	table, err := ReadTable(bytes.NewReader(data), delim)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", cfg.InputPath, err)
	}
	log.Printf("Read %d sites across %d columns from %s\n", table.Sites(), table.Width(), cfg.InputPath)

	enc := NewEncoder(cfg.Unknown)
	enc.Prefix = cfg.Prefix

	if cfg.NamesPath != "" {
		names, err := loadNames(ctx, cfg.NamesPath, client)
		if err != nil {
			return Summary{}, err
		}
		// The empty column left by a trailing delimiter has no sample.
		if occupied := table.OccupiedColumns(); len(names) > occupied {
			return Summary{}, fmt.Errorf("%w: %s lists %d names but %s has %d non-empty columns", ErrNameCount, cfg.NamesPath, len(names), cfg.InputPath, occupied)
		}
		enc.Names = names
	}

	records, err := enc.Sequences(table)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", cfg.InputPath, err)
	}

	for _, call := range enc.UnrecognizedCalls() {
		log.Printf("Unrecognized genotype call %q seen %d times (policy: %s)\n", call, enc.unrecognized[call], cfg.Unknown)
	}

	if err := writeOutput(cfg.OutputPath, records); err != nil {
		return Summary{}, err
	}

	return Summary{
		Sites:          table.Sites(),
		Columns:        table.Width(),
		Records:        len(records),
		SkippedColumns: table.Width() - len(records),
		Unrecognized:   enc.Unrecognized(),
	}, nil
}

func readAll(ctx context.Context, path string, client *storage.Client) ([]byte, error) {
	r, err := OpenInput(ctx, path, client)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, pfx.Err(err))
	}

	return data, nil
}

func loadNames(ctx context.Context, path string, client *storage.Client) ([]string, error) {
	data, err := readAll(ctx, path, client)
	if err != nil {
		return nil, err
	}

	return ReadNames(bytes.NewReader(data))
}

// writeOutput truncates or creates path and writes records to it. The file is
// closed on every return path; a failed close is reported like a failed
// write.
func writeOutput(path string, records []Record) (err error) {
	f, err := os.Create(ExpandHome(path))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, pfx.Err(err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrOutputWrite, pfx.Err(cerr))
		}
	}()

	if err := WriteFASTA(f, records); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}

	return nil
}
