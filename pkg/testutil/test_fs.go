package testutil

import (
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}
