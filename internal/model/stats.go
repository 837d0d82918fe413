package model

import "time"

//SyncOptions configures one synchronization call. Immutable for the lifetime of the call.
type SyncOptions struct {
	//RemoveExtraneous enables the prune stage, which deletes destination entries
	//that have no corresponding path under the source root.
	RemoveExtraneous bool
}

//DefaultSyncOptions returns the options used when the caller does not override anything.
func DefaultSyncOptions() SyncOptions {
	return SyncOptions{RemoveExtraneous: true}
}

//SyncStats accumulates the outcome of one synchronization call. Both the copy and the
//prune stages write into the same instance; afterwards it is owned by the caller.
type SyncStats struct {
	EntriesScanned     uint64
	FilesCopied        uint64
	FilesSkipped       uint64
	FilesDeleted       uint64
	DirectoriesCreated uint64
	BytesCopied        uint64

	ScanElapsed  time.Duration
	CopyElapsed  time.Duration
	PruneElapsed time.Duration
	TotalElapsed time.Duration

	//SyncedEntries holds, in traversal order, the source metadata of every entry that was
	//actually materialized in the destination during this call: directories created and
	//files copied. Entries that were merely scanned or skipped never appear here.
	SyncedEntries []EntryMeta
}
