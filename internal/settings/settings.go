package settings

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"dmirror/internal/log"
)

type Settings struct {
	SrcDir    string
	DestDir   string
	KeepExtra bool
	LogLevel  log.Level
	LogToStd  bool
}

func New(commandArgs []string) (*Settings, error) {
	stg := new(Settings)
	flagSet := flag.NewFlagSet("Directory Mirror CLI", flag.ContinueOnError)

	flagSet.BoolVar(&stg.KeepExtra, "keep-extra", false,
		"preserve entries that exist only in the destination directory (the prune stage is skipped)")
	flagSet.BoolVar(&stg.LogToStd, "log2std", true,
		"if true, then logs are written in a console-friendly form, otherwise - as JSON lines")
	var level string
	flagSet.StringVar(&level, "loglvl", log.InfoLevel,
		fmt.Sprintf("level of logging, permitted values are: %v, %v, %v, %v",
			log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel),
	)

	// the flag set itself reports parse problems and renders the usage text;
	// flag.ErrHelp is passed through so that the caller can exit cleanly
	if err := flagSet.Parse(commandArgs); err != nil {
		return nil, err
	}

	if flagSet.NArg() < 2 {
		return nil, errors.New("two arguments (the source and destination directories) must present")
	}

	var err error = nil
	if stg.SrcDir, err = filepath.Abs(flagSet.Arg(0)); err != nil {
		return nil, fmt.Errorf("path %q cannot be converted to absolute: %v", flagSet.Arg(0), err)
	}
	if stg.DestDir, err = filepath.Abs(flagSet.Arg(1)); err != nil {
		return nil, fmt.Errorf("path %q cannot be converted to absolute: %v", flagSet.Arg(1), err)
	}
	if stg.SrcDir == stg.DestDir {
		return nil, errors.New("the source and destination directories cannot be the same")
	}
	if !log.Level(level).IsValid() {
		return nil, fmt.Errorf("logging level %q does not exist", level)
	}
	stg.LogLevel = log.Level(strings.ToLower(level))

	return stg, nil
}
