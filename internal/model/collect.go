package model

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

//LstatError signals that the metadata of an entry could not be collected
//(the entry vanished, permission was denied, or the path is broken).
type LstatError struct {
	Path  string
	Errno syscall.Errno
}

func (e *LstatError) Error() string {
	return fmt.Sprintf("lstat failed for %q: %v (errno %d)", e.Path, error(e.Errno), uint64(e.Errno))
}

func (e *LstatError) Unwrap() error {
	return e.Errno
}

//Collect produces the metadata snapshot of the entry at the given path, recorded at the
//given traversal depth. The underlying stat call never dereferences a terminal symlink.
//On failure the returned error is always a *LstatError.
func Collect(path string, depth int) (EntryMeta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		var errno syscall.Errno
		errors.As(err, &errno)
		return EntryMeta{}, &LstatError{Path: path, Errno: errno}
	}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return EntryMeta{}, &LstatError{Path: path, Errno: syscall.ENOTSUP}
	}

	meta := EntryMeta{
		Path:  path,
		Depth: depth,
		Mode:  uint32(st.Mode),
		UID:   st.Uid,
		GID:   st.Gid,
		Size:  st.Size,
	}
	meta.Atime, meta.Mtime, meta.Ctime = statTimes(st)
	return meta, nil
}
