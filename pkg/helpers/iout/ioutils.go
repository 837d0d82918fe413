package iout

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

//EnsureDirExists creates the directory at the given path, along with any missing parents.
//It is a no-op if the directory already exists.
func EnsureDirExists(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("cannot create dir: %w", err)
	}
	return nil
}

//CopyFile copies the entry at the source path (must be a regular file) to the specified
//destination, overwriting the destination if it already exists.
//It sets for the copied file the same modTime as the source file modTime.
func CopyFile(srcPath, dstPath string, srcModTime time.Time) error {
	if err := EnsureDirExists(filepath.Dir(dstPath)); err != nil {
		return err
	}
	if err := copyFileContents(srcPath, dstPath); err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	if err := os.Chtimes(dstPath, time.Now(), srcModTime); err != nil {
		return fmt.Errorf("cannot set file modification time: %w", err)
	}
	return nil
}

func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot read/write file content: %w", err)
	}
	return out.Sync()
}

//RemoveTree removes the entry at the given path together with everything beneath it,
//and returns the number of filesystem objects (the entry itself included) that were removed.
//Entries that cannot be listed are removed anyway but stay out of the count.
func RemoveTree(path string) (uint64, error) {
	var count uint64
	_ = filepath.WalkDir(path, func(_ string, _ fs.DirEntry, err error) error {
		if err == nil {
			count++
		}
		return nil
	})
	if err := os.RemoveAll(path); err != nil {
		return 0, fmt.Errorf("cannot remove entry: %w", err)
	}
	return count, nil
}
