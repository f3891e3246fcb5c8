package measurements

import (
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// Relative paths and paths outside home are returned unchanged.
func toUserFriendlyPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return path
	}
	homeDir := usr.HomeDir

	if path == homeDir {
		return "~"
	}
	if !strings.HasPrefix(path, homeDir+string(filepath.Separator)) {
		return path
	}

	relPath, err := filepath.Rel(homeDir, path)
	if err != nil {
		return path
	}
	return filepath.Join("~", relPath)
}
