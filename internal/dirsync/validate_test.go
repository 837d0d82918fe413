package dirsync

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"dmirror/internal/model"
)

func TestSynchronizeRejectsMissingSource(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseDir := t.TempDir()
	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())

	stats, err := syncer.Synchronize(filepath.Join(baseDir, "no_such_dir"), filepath.Join(baseDir, "dest"))
	requires.Nil(stats)

	var validationErr *ValidationError
	requires.True(errors.As(err, &validationErr))
	requires.Contains(validationErr.Error(), "source directory does not exist")
}

func TestSynchronizeRejectsFileAsSource(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseDir := t.TempDir()
	writeFile(requires, baseDir, "source", "not a directory")
	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())

	stats, err := syncer.Synchronize(filepath.Join(baseDir, "source"), filepath.Join(baseDir, "dest"))
	requires.Nil(stats)

	var validationErr *ValidationError
	requires.True(errors.As(err, &validationErr))
	requires.Contains(validationErr.Error(), "source path is not a directory")
}

func TestSynchronizeRejectsFileAsDestination(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseDir := t.TempDir()
	srcDir := filepath.Join(baseDir, "source")
	requires.NoError(os.Mkdir(srcDir, os.ModePerm))
	writeFile(requires, baseDir, "dest", "not a directory")
	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())

	stats, err := syncer.Synchronize(srcDir, filepath.Join(baseDir, "dest"))
	requires.Nil(stats)

	var validationErr *ValidationError
	requires.True(errors.As(err, &validationErr))
	requires.Contains(validationErr.Error(), "destination exists but is not a directory")
}

func TestSynchronizeRejectsSameEntity(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	srcDir := t.TempDir()
	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())

	stats, err := syncer.Synchronize(srcDir, srcDir)
	requires.Nil(stats)

	var conflictErr *ConflictError
	requires.True(errors.As(err, &conflictErr))
}

func TestSynchronizeRejectsSameEntityThroughSymlink(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseDir := t.TempDir()
	srcDir := filepath.Join(baseDir, "source")
	requires.NoError(os.Mkdir(srcDir, os.ModePerm))
	alias := filepath.Join(baseDir, "alias")
	requires.NoError(os.Symlink(srcDir, alias))
	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())

	// the alias resolves to the very same device and inode as the source
	stats, err := syncer.Synchronize(srcDir, alias)
	requires.Nil(stats)

	var conflictErr *ConflictError
	requires.True(errors.As(err, &conflictErr))
}

func TestSynchronizeCreatesMissingDestinationRoot(t *testing.T) {
	requires := require.New(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	baseDir := t.TempDir()
	srcDir := filepath.Join(baseDir, "source")
	requires.NoError(os.Mkdir(srcDir, os.ModePerm))
	writeFile(requires, srcDir, "file.txt", "content")
	destDir := filepath.Join(baseDir, "missing", "dest")

	syncer := New(getMockLogger(mockCtrl), model.DefaultSyncOptions())
	stats, err := syncer.Synchronize(srcDir, destDir)
	requires.NoError(err)

	requires.DirExists(destDir)
	requires.Equal("content", readFile(requires, filepath.Join(destDir, "file.txt")))
	// the destination root itself is not counted as a created directory
	requires.Equal(uint64(0), stats.DirectoriesCreated)
	requires.Equal(uint64(1), stats.FilesCopied)
}
