package dirsync

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"dmirror/internal/log"
	"dmirror/internal/model"
	"dmirror/pkg/helpers/iout"
)

//copyFromSource walks the source tree and materializes every new or changed entry in the
//destination tree. One failing entry never aborts the stage: it is logged, skipped (whole
//subtree for directories) and the traversal moves on.
func (s *Syncer) copyFromSource(source, destination string, stats *model.SyncStats) {
	stageStart := time.Now()

	walkTree(source, func(path string, depth int, entry fs.DirEntry) walkControl {
		stats.EntriesScanned++

		meta, err := model.Collect(path, depth)
		if err != nil {
			s.log.Error("cannot collect source entry metadata", log.Cause(err))
			if entry.IsDir() {
				return walkSkipSubtree
			}
			return walkDescend
		}

		if meta.IsSymlink() {
			s.log.Info("skipping symlink", log.String("path", path))
			stats.FilesSkipped++
			return walkSkipSubtree
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			s.log.Warn("skipping entry", log.Cause(&PathError{Path: path, Err: err}))
			if meta.IsDir() {
				return walkSkipSubtree
			}
			return walkDescend
		}
		destPath := filepath.Join(destination, rel)

		if meta.IsDir() {
			return s.syncDirectory(meta, destPath, stats)
		}

		if !meta.IsRegular() {
			s.log.Info("skipping non-regular entry", log.String("path", path))
			stats.FilesSkipped++
			return walkDescend
		}

		s.syncFile(meta, destPath, stats)
		return walkDescend
	}, func(dir string, err error) {
		s.log.Debug("cannot read directory, subtree skipped", log.String("path", dir), log.Cause(err))
	})

	stats.ScanElapsed = time.Since(stageStart)
	s.log.Debug("copy stage finished", log.Duration("elapsed", stats.ScanElapsed))
}

//syncDirectory ensures that the destination counterpart of a source directory exists.
//A creation failure disables recursion into the source subtree.
func (s *Syncer) syncDirectory(meta model.EntryMeta, destPath string, stats *model.SyncStats) walkControl {
	if _, err := os.Stat(destPath); err == nil {
		return walkDescend
	}
	if err := iout.EnsureDirExists(destPath); err != nil {
		s.log.Warn("cannot create directory", log.String("path", destPath), log.Cause(err))
		return walkSkipSubtree
	}
	stats.DirectoriesCreated++
	stats.SyncedEntries = append(stats.SyncedEntries, meta)
	s.log.Info("created directory", log.String("path", destPath))
	return walkDescend
}

//syncFile applies the change-detection policy to one regular source file and copies it
//when required. Bytes are accounted from the source size captured before the copy.
func (s *Syncer) syncFile(meta model.EntryMeta, destPath string, stats *model.SyncStats) {
	shouldCopy, ok := s.needsCopy(meta, destPath)
	if !ok {
		return // a replace-removal failed, the entry was logged and is abandoned as is
	}
	if !shouldCopy {
		stats.FilesSkipped++
		return
	}

	copyStart := time.Now()
	if err := iout.CopyFile(meta.Path, destPath, time.Unix(meta.Mtime.Sec, meta.Mtime.Nsec)); err != nil {
		s.log.Warn("skipping file", log.Cause(&CopyError{Source: meta.Path, Destination: destPath, Err: err}))
		return
	}
	stats.CopyElapsed += time.Since(copyStart)
	stats.FilesCopied++
	stats.BytesCopied += uint64(meta.Size)
	stats.SyncedEntries = append(stats.SyncedEntries, meta)
	s.log.Info("copied file",
		log.String("source", meta.Path), log.String("destination", destPath), log.Int64("bytes", meta.Size))
}

//needsCopy decides whether the source file must be copied over its destination counterpart.
//A destination entry of the wrong kind is removed here, so that the subsequent copy starts
//from a clean path. ok is false when such a removal failed and the entry must be abandoned.
func (s *Syncer) needsCopy(meta model.EntryMeta, destPath string) (shouldCopy, ok bool) {
	destInfo, err := os.Lstat(destPath)
	if err != nil {
		return true, true // no destination counterpart
	}

	mode := destInfo.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		s.log.Info("destination entry is a symlink, replacing", log.String("path", destPath))
		if err := os.Remove(destPath); err != nil {
			s.log.Warn("skipping file", log.Cause(&RemoveError{Path: destPath, Err: err}))
			return false, false
		}
		return true, true
	case !mode.IsRegular():
		s.log.Info("destination entry is not a regular file, replacing", log.String("path", destPath))
		if err := os.RemoveAll(destPath); err != nil {
			s.log.Warn("skipping file", log.Cause(&RemoveError{Path: destPath, Err: err}))
			return false, false
		}
		return true, true
	}

	destMeta, err := model.Collect(destPath, meta.Depth)
	if err != nil {
		s.log.Error("cannot collect destination entry metadata", log.Cause(err))
		return true, true // cannot compare, recopy to be safe
	}
	return meta.Size != destMeta.Size || meta.Mtime.After(destMeta.Mtime), true
}
