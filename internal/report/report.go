//Package report renders the outcome of a synchronization call for a human reader.
//Its output format is free text and not a stable contract of any kind.
package report

import (
	"fmt"
	"io"

	"dmirror/internal/model"
)

//Print writes the synchronization summary block to w.
func Print(w io.Writer, stats *model.SyncStats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Synchronization Summary ===")
	fmt.Fprintf(w, "  Entries scanned:      %d\n", stats.EntriesScanned)
	fmt.Fprintf(w, "  Files copied:         %d\n", stats.FilesCopied)
	fmt.Fprintf(w, "  Files skipped:        %d\n", stats.FilesSkipped)
	fmt.Fprintf(w, "  Directories created:  %d\n", stats.DirectoriesCreated)
	fmt.Fprintf(w, "  Entries deleted:      %d\n", stats.FilesDeleted)
	fmt.Fprintf(w, "  Bytes copied:         %d\n", stats.BytesCopied)

	fmt.Fprintf(w, "  %-21s %.3f s\n", "Scan elapsed:", stats.ScanElapsed.Seconds())
	fmt.Fprintf(w, "  %-21s %.3f s\n", "Copy elapsed:", stats.CopyElapsed.Seconds())
	fmt.Fprintf(w, "  %-21s %.3f s\n", "Prune elapsed:", stats.PruneElapsed.Seconds())
	fmt.Fprintf(w, "  %-21s %.3f s\n", "Total elapsed:", stats.TotalElapsed.Seconds())

	if totalSeconds := stats.TotalElapsed.Seconds(); totalSeconds > 0 {
		mib := float64(stats.BytesCopied) / (1024.0 * 1024.0)
		fmt.Fprintf(w, "  Effective throughput: %.3f MiB/s\n", mib/totalSeconds)
	} else {
		fmt.Fprintln(w, "  Effective throughput: n/a")
	}
}

//PrintSyncedEntries writes the metadata dump of every synchronized source entry to w.
func PrintSyncedEntries(w io.Writer, entries []model.EntryMeta) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "\nNo entries were synchronized.")
		return
	}

	fmt.Fprintln(w, "\n=== Synchronized Source Entries ===")
	for _, meta := range entries {
		fmt.Fprintf(w, "  Path: %s\n", meta.Path)
		fmt.Fprintf(w, "    depth: %d\n", meta.Depth)
		fmt.Fprintf(w, "    mode: %o\n", meta.Mode)
		fmt.Fprintf(w, "    uid: %d, gid: %d\n", meta.UID, meta.GID)
		fmt.Fprintf(w, "    size: %d bytes\n", meta.Size)
		fmt.Fprintf(w, "    mtime: %ds + %dns\n", meta.Mtime.Sec, meta.Mtime.Nsec)
		fmt.Fprintf(w, "    atime: %ds + %dns\n", meta.Atime.Sec, meta.Atime.Nsec)
		fmt.Fprintf(w, "    ctime: %ds + %dns\n", meta.Ctime.Sec, meta.Ctime.Nsec)
	}
}
