package filesystem_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteText(t *testing.T) {
	implementations := map[string]func(t *testing.T) (filesystem.FS, string){
		"os": func(t *testing.T) (filesystem.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"afero": func(t *testing.T) (filesystem.FS, string) {
			mem := afero.NewMemMapFs()
			require.NoError(t, mem.MkdirAll("/work", 0755))
			return filesystem.NewAferoFS(mem), "/work"
		},
	}

	for name, setup := range implementations {
		t.Run(name, func(t *testing.T) {
			fsys, dir := setup(t)

			file := filepath.Join(dir, "file.ext")
			require.NoError(t, filesystem.WriteText(fsys, file, "Hello", false))

			got, err := filesystem.ReadText(fsys, file)
			require.NoError(t, err)
			assert.Equal(t, "Hello", got)

			require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "sub"), 0755))
			entries, err := filesystem.ListDir(fsys, dir)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "file.ext", entries[0].Name())
			assert.False(t, entries[0].IsDir())
			assert.Equal(t, "sub", entries[1].Name())
			assert.True(t, entries[1].IsDir())
		})
	}
}

func TestReadTextNotFound(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := filesystem.ReadText(fsys, "/missing")
	require.Error(t, err)

	var readErr *filesystem.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, filesystem.ReadNotFound, readErr.Kind)
	assert.Equal(t, "file not found", err.Error())
}

func TestReadTextInvalidEncoding(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/bin.dat", []byte{0xff, 0xfe, 0x00}, 0644))

	_, err := filesystem.ReadText(filesystem.NewAferoFS(mem), "/bin.dat")

	var readErr *filesystem.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, filesystem.ReadInvalidEncoding, readErr.Kind)
	assert.ErrorIs(t, err, filesystem.ErrInvalidEncoding)
}

func TestWriteTextDirectoryMissing(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "missing", "out.conf")

	err := filesystem.WriteText(filesystem.NewOS(), target, "x", false)

	var writeErr *filesystem.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filesystem.WriteDirectoryMissing, writeErr.Kind)
	assert.Equal(t, "directory does not exist", err.Error())

	require.NoError(t, filesystem.WriteText(filesystem.NewOS(), target, "x", true))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestAferoWriteRequiresParent(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	err := filesystem.WriteText(fsys, "/nope/out.conf", "x", false)

	var writeErr *filesystem.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filesystem.WriteDirectoryMissing, writeErr.Kind)
}

func TestWriteTextPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0555))

	err := filesystem.WriteText(filesystem.NewOS(), filepath.Join(locked, "out"), "x", false)

	var writeErr *filesystem.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, filesystem.WritePermissionDenied, writeErr.Kind)
}

func TestListDirMissing(t *testing.T) {
	_, err := filesystem.ListDir(filesystem.NewAferoFS(afero.NewMemMapFs()), "/themes")

	var dirErr *filesystem.ReadDirError
	require.True(t, errors.As(err, &dirErr))
	assert.Equal(t, filesystem.ReadDirMissing, dirErr.Kind)
	assert.Equal(t, "directory does not exist", err.Error())
}
