package dirsync

import (
	"io/fs"
	"os"
	"path/filepath"
)

//walkControl is the traversal-control signal returned by a visit step.
type walkControl int

const (
	//walkDescend continues the traversal into the visited entry (if it is a directory).
	walkDescend walkControl = iota
	//walkSkipSubtree visits no descendant of the visited entry.
	walkSkipSubtree
)

type visitFunc func(path string, depth int, entry fs.DirEntry) walkControl

type readErrorFunc func(dir string, err error)

//walkTree performs a pre-order depth-first traversal of the tree rooted at root,
//driven by an explicit work stack. The root itself is not visited; its immediate
//children have depth 0. Sibling order is whatever os.ReadDir returns.
//
//Directories are descended into only when the visit step returns walkDescend.
//Symlinks are never followed: a symlink to a directory is visited as a leaf.
//A directory that cannot be listed is reported through onReadError and skipped.
func walkTree(root string, visit visitFunc, onReadError readErrorFunc) {
	type frame struct {
		dir     string
		depth   int
		entries []fs.DirEntry
		next    int
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		onReadError(root, err)
		return
	}
	stack := []*frame{{dir: root, entries: entries}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		path := filepath.Join(top.dir, entry.Name())
		ctl := visit(path, top.depth, entry)

		if entry.IsDir() && ctl == walkDescend {
			children, err := os.ReadDir(path)
			if err != nil {
				onReadError(path, err)
				continue
			}
			stack = append(stack, &frame{dir: path, depth: top.depth + 1, entries: children})
		}
	}
}
