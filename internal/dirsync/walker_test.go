package dirsync

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type visitRecord struct {
	relPath string
	depth   int
}

func buildWalkFixture(t *testing.T) string {
	requires := require.New(t)
	root := t.TempDir()
	writeFile(requires, root, "a.txt", "a")
	writeFile(requires, root, "b/c.txt", "c")
	writeFile(requires, root, "b/d/e.txt", "e")
	writeFile(requires, root, "f.txt", "f")
	return root
}

func TestWalkTreeVisitsInPreOrder(t *testing.T) {
	requires := require.New(t)
	root := buildWalkFixture(t)

	var visits []visitRecord
	walkTree(root, func(path string, depth int, entry fs.DirEntry) walkControl {
		rel, err := filepath.Rel(root, path)
		requires.NoError(err)
		visits = append(visits, visitRecord{relPath: rel, depth: depth})
		return walkDescend
	}, func(dir string, err error) {
		t.Fatalf("unexpected read error for %s: %v", dir, err)
	})

	// os.ReadDir returns siblings sorted by name, so the pre-order is deterministic here
	requires.Equal([]visitRecord{
		{relPath: "a.txt", depth: 0},
		{relPath: "b", depth: 0},
		{relPath: filepath.Join("b", "c.txt"), depth: 1},
		{relPath: filepath.Join("b", "d"), depth: 1},
		{relPath: filepath.Join("b", "d", "e.txt"), depth: 2},
		{relPath: "f.txt", depth: 0},
	}, visits)
}

func TestWalkTreeSkipSubtree(t *testing.T) {
	requires := require.New(t)
	root := buildWalkFixture(t)

	var visited []string
	walkTree(root, func(path string, depth int, entry fs.DirEntry) walkControl {
		rel, err := filepath.Rel(root, path)
		requires.NoError(err)
		visited = append(visited, rel)
		if entry.IsDir() {
			return walkSkipSubtree
		}
		return walkDescend
	}, func(dir string, err error) {
		t.Fatalf("unexpected read error for %s: %v", dir, err)
	})

	requires.Equal([]string{"a.txt", "b", "f.txt"}, visited)
}

func TestWalkTreeDoesNotFollowDirectorySymlinks(t *testing.T) {
	requires := require.New(t)
	root := t.TempDir()
	writeFile(requires, root, "real/inner.txt", "inner")
	requires.NoError(os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linked")))

	var visited []string
	walkTree(root, func(path string, depth int, entry fs.DirEntry) walkControl {
		rel, err := filepath.Rel(root, path)
		requires.NoError(err)
		visited = append(visited, rel)
		return walkDescend
	}, func(dir string, err error) {
		t.Fatalf("unexpected read error for %s: %v", dir, err)
	})

	// "linked" is visited as a leaf, nothing under it appears
	requires.Equal([]string{"linked", "real", filepath.Join("real", "inner.txt")}, visited)
}
