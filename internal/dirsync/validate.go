package dirsync

import (
	"os"

	"dmirror/internal/log"
	"dmirror/pkg/helpers/iout"
)

//validate checks the preconditions on the source and destination roots.
//Every violation is fatal and reported before any mutation happens.
func (s *Syncer) validate(source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		return &ValidationError{Path: source, Reason: "source directory does not exist"}
	}
	if !info.IsDir() {
		return &ValidationError{Path: source, Reason: "source path is not a directory"}
	}

	if info, err := os.Stat(destination); err == nil && !info.IsDir() {
		return &ValidationError{Path: destination, Reason: "destination exists but is not a directory"}
	}
	return nil
}

//ensureDestinationRoot creates the destination root if it is absent. The creation is
//logged but not counted towards the directories created by the copy stage.
func (s *Syncer) ensureDestinationRoot(destination string) error {
	if _, err := os.Stat(destination); err == nil {
		return nil
	}
	if err := iout.EnsureDirExists(destination); err != nil {
		return &ValidationError{Path: destination, Reason: "cannot create destination root"}
	}
	s.log.Info("created destination root", log.String("path", destination))
	return nil
}

//checkConflict rejects a source and destination that are the same underlying filesystem
//entity (same device and inode), which a plain path comparison would not always catch.
func (s *Syncer) checkConflict(source, destination string) error {
	srcInfo, err := os.Stat(source)
	if err != nil {
		return &ValidationError{Path: source, Reason: "source directory does not exist"}
	}
	dstInfo, err := os.Stat(destination)
	if err != nil {
		return &ValidationError{Path: destination, Reason: "destination directory does not exist"}
	}
	if os.SameFile(srcInfo, dstInfo) {
		return &ConflictError{Source: source, Destination: destination}
	}
	return nil
}
