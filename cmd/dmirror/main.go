package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dmirror/internal/dirsync"
	"dmirror/internal/log"
	"dmirror/internal/model"
	"dmirror/internal/report"
	"dmirror/internal/settings"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	stg, err := settings.New(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	logger, err := log.New(stg.LogLevel, stg.LogToStd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer logger.Sync()

	syncer := dirsync.New(logger, model.SyncOptions{RemoveExtraneous: !stg.KeepExtra})
	stats, err := syncer.Synchronize(stg.SrcDir, stg.DestDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Synchronization failed:", err)
		return 1
	}

	report.Print(os.Stdout, stats)
	report.PrintSyncedEntries(os.Stdout, stats.SyncedEntries)
	return 0
}
