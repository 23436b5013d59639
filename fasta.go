package genotypefasta

import (
	"bufio"
	"io"

	"github.com/carbocation/pfx"
)

// WriteFASTA writes each record as a header line and a single, unwrapped
// sequence line.
func WriteFASTA(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	for _, rec := range records {
		if err := bw.WriteByte('>'); err != nil {
			return pfx.Err(err)
		}
		if _, err := bw.WriteString(rec.Name); err != nil {
			return pfx.Err(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return pfx.Err(err)
		}
		if _, err := bw.WriteString(rec.Sequence); err != nil {
			return pfx.Err(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return pfx.Err(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
