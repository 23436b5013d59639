package genotypefasta

import (
	"context"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// OpenInput opens a local file or a gs:// object and transparently
// decompresses it. client may be nil when path is local.
func OpenInput(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	var src io.ReadCloser

	if IsGoogleStoragePath(path) {
		rdr, err := openGoogleStorage(ctx, path, client)
		if err != nil {
			return nil, err
		}
		src = rdr
	} else {
		f, err := os.Open(ExpandHome(path))
		if err != nil {
			return nil, pfx.Err(err)
		}
		src = f
	}

	r, err := MaybeDecompress(src)
	if err != nil {
		src.Close()
		return nil, err
	}

	return r, nil
}
