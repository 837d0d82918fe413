package dirsync

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"dmirror/internal/log"
	"dmirror/internal/model"
	"dmirror/pkg/helpers/iout"
)

//removalCandidate is one destination entry with no corresponding source path.
type removalCandidate struct {
	path  string
	isDir bool
	depth int
}

//pruneDestination removes destination entries that have no counterpart under the source
//root. Candidates are collected first and removed deepest-first, so a directory is never
//removed before the fate of its descendants has been decided and the descendants are gone
//before their parent removal is attempted. Destination symlinks are never removed directly,
//although an orphaned directory takes its whole remaining subtree with it.
func (s *Syncer) pruneDestination(source, destination string, stats *model.SyncStats) {
	stageStart := time.Now()

	var candidates []removalCandidate
	walkTree(destination, func(path string, depth int, entry fs.DirEntry) walkControl {
		meta, err := model.Collect(path, depth)
		if err != nil {
			s.log.Error("cannot collect destination entry metadata", log.Cause(err))
			if entry.IsDir() {
				return walkSkipSubtree
			}
			return walkDescend
		}

		if meta.IsSymlink() {
			s.log.Info("skipping symlink in destination", log.String("path", path))
			return walkDescend
		}

		rel, err := filepath.Rel(destination, path)
		if err != nil {
			s.log.Warn("skipping destination entry", log.Cause(&PathError{Path: path, Err: err}))
			if meta.IsDir() {
				return walkSkipSubtree
			}
			return walkDescend
		}

		if _, err := os.Stat(filepath.Join(source, rel)); err == nil {
			return walkDescend // a source counterpart exists, the entry is kept
		}

		candidates = append(candidates, removalCandidate{path: path, isDir: meta.IsDir(), depth: depth})
		return walkDescend
	}, func(dir string, err error) {
		s.log.Debug("cannot read directory, subtree skipped", log.String("path", dir), log.Cause(err))
	})

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].depth > candidates[j].depth
	})

	for _, candidate := range candidates {
		if candidate.isDir {
			s.log.Info("removing extraneous directory", log.String("path", candidate.path))
			removed, err := iout.RemoveTree(candidate.path)
			if err != nil {
				s.log.Warn("extraneous directory retained", log.Cause(&RemoveError{Path: candidate.path, Err: err}))
				continue
			}
			stats.FilesDeleted += removed
		} else {
			s.log.Info("removing extraneous file", log.String("path", candidate.path))
			if err := os.Remove(candidate.path); err != nil {
				s.log.Warn("extraneous file retained", log.Cause(&RemoveError{Path: candidate.path, Err: err}))
				continue
			}
			stats.FilesDeleted++
		}
	}

	stats.PruneElapsed = time.Since(stageStart)
	s.log.Debug("prune stage finished", log.Int("candidates", len(candidates)),
		log.Uint64("entriesDeleted", stats.FilesDeleted), log.Duration("elapsed", stats.PruneElapsed))
}
