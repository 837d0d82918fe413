package dirsync

import (
	"time"

	"dmirror/internal/log"
	"dmirror/internal/model"
	"dmirror/pkg/helpers/run"
)

//Syncer mirrors a destination directory tree to match a source directory tree:
//new and changed entries are copied, and (optionally) entries absent from the
//source are pruned. One Syncer processes one source/destination pair at a time,
//sequentially; the source is never modified.
type Syncer struct {
	log     log.Logger
	options model.SyncOptions
}

func New(logger log.Logger, options model.SyncOptions) *Syncer {
	return &Syncer{log: logger, options: options}
}

//Synchronize runs one full synchronization call: validation, the copy stage and,
//when enabled by the options, the prune stage. It returns the accumulated stats,
//owned by the caller from then on.
//
//Only fatal failures surface as the returned error: a violated precondition, the
//source and destination being the same entity, or an unclassified failure escaping
//the filesystem layer (recovered from a panic). In that case no partial stats are
//returned. Per-entry failures are logged and the affected entry or subtree skipped.
func (s *Syncer) Synchronize(source, destination string) (*model.SyncStats, error) {
	stats := new(model.SyncStats)
	if err := run.WithError(func() error {
		return s.synchronize(source, destination, stats)
	}); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Syncer) synchronize(source, destination string, stats *model.SyncStats) error {
	totalStart := time.Now()
	totalSteps := 3
	if s.options.RemoveExtraneous {
		totalSteps = 4
	}

	s.log.Info("validating input directories", stage(1, totalSteps)...)
	if err := s.validate(source, destination); err != nil {
		return err
	}

	s.log.Info("preparing destination directory tree", stage(2, totalSteps)...)
	if err := s.ensureDestinationRoot(destination); err != nil {
		return err
	}
	if err := s.checkConflict(source, destination); err != nil {
		return err
	}

	s.log.Info("copying new and updated entries from source", stage(3, totalSteps)...)
	s.copyFromSource(source, destination, stats)

	if s.options.RemoveExtraneous {
		s.log.Info("pruning entries that no longer exist in source", stage(4, totalSteps)...)
		s.pruneDestination(source, destination, stats)
	} else {
		s.log.Info("skipping prune stage, extraneous entries retained")
	}

	stats.TotalElapsed = time.Since(totalStart)
	return nil
}

func stage(step, of int) []log.Field {
	return []log.Field{log.Int("step", step), log.Int("of", of)}
}
