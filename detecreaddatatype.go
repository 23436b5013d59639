package genotypefasta

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x78},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType peeks at the start of a stream and reports which compression
// format, if any, its magic number belongs to. Nothing is consumed from r.
// Byte code signatures from https://stackoverflow.com/a/19127748/199475
func DetectDataType(r *bufio.Reader) (DataType, error) {
	buff, err := r.Peek(6)
	if err != nil && !errors.Is(err, io.EOF) {
		return DataTypeInvalid, err
	}

Outer:
	for dt, sig := range byteCodeSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		if dt == DataTypeZ && !isZlibHeader(buff) {
			continue
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// A zlib stream starts with CMF=0x78 and a FLG byte that makes the pair a
// multiple of 31. A lone 'x' at the start of a text table is not enough.
func isZlibHeader(buff []byte) bool {
	if len(buff) < 2 {
		return false
	}

	return (uint16(buff[0])<<8|uint16(buff[1]))%31 == 0
}

// MaybeDecompress wraps rc in a decompressor chosen by its magic number.
// Closing the result closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	dt, err := DetectDataType(br)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var r io.Reader
	switch dt {
	case DataTypeGzip:
		r, err = gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)
		// Only the first member of the archive is read.
		_, err = zr.Next()
		r = zr
	case DataTypeBZip2:
		r = bzip2.NewReader(br)
	case DataTypeXZ:
		r, err = xz.NewReader(br, 0)
	case DataTypeZ:
		r, err = zlib.NewReader(br)
	default:
		r = br
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &decompressedReadCloser{Reader: r, under: rc}, nil
}

// decompressedReadCloser reads through the decompressor and closes the
// underlying source.
type decompressedReadCloser struct {
	io.Reader
	under io.Closer
}

func (c *decompressedReadCloser) Close() error {
	if rc, ok := c.Reader.(io.Closer); ok {
		rc.Close()
	}

	return c.under.Close()
}
