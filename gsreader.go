package genotypefasta

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names a Google Storage object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/path/to/object into its bucket and
// object name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// openGoogleStorage opens a whole object for reading with the client's
// default credentials. The object's attributes are fetched first so that a
// missing object fails before any read.
func openGoogleStorage(ctx context.Context, path string, client *storage.Client) (*storage.Reader, error) {
	if client == nil {
		return nil, pfx.Err(fmt.Errorf("%s: no google storage client was configured", path))
	}

	bucketName, objectName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	handle := client.Bucket(bucketName).Object(objectName)

	if _, err := handle.Attrs(ctx); err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	rdr, err := handle.NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rdr, nil
}
