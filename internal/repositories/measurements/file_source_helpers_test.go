package measurements

import (
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil || currentUser.HomeDir == "" || currentUser.HomeDir == "/" {
		t.Skip("no usable home directory")
	}
	homeDir := currentUser.HomeDir

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative path unchanged", path: "001.input.txt", want: "001.input.txt"},
		{name: "home directory itself", path: homeDir, want: "~"},
		{name: "file under home", path: filepath.Join(homeDir, "aoc", "001.input.txt"), want: filepath.Join("~", "aoc", "001.input.txt")},
		{name: "sibling sharing the home prefix", path: homeDir + "-other/001.input.txt", want: homeDir + "-other/001.input.txt"},
		{name: "path outside home", path: "/nonexistent-root/001.input.txt", want: "/nonexistent-root/001.input.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toUserFriendlyPath(tt.path))
		})
	}
}
