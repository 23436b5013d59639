package genotypefasta

import (
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~/ to the current user's home directory. The
// path is returned unchanged if the home directory cannot be determined.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		return path
	}

	return filepath.Join(usr.HomeDir, path[2:])
}
