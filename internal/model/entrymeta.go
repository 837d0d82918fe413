package model

import "syscall"

//Timespec is one filesystem timestamp with nanosecond precision.
type Timespec struct {
	Sec  int64
	Nsec int64
}

//After reports whether t is strictly later than other.
//Seconds are compared first, nanoseconds act as a tiebreaker only when seconds are equal.
func (t Timespec) After(other Timespec) bool {
	return t.Sec > other.Sec || (t.Sec == other.Sec && t.Nsec > other.Nsec)
}

//EntryMeta is a point-in-time metadata snapshot of one filesystem entry, taken without
//following a terminal symlink. The mode bits describe the link itself when the entry is one.
//It is immutable once produced.
type EntryMeta struct {
	Path  string
	Depth int
	Mode  uint32 // raw st_mode bits: file type + permissions
	UID   uint32
	GID   uint32
	Size  int64
	Atime Timespec
	Mtime Timespec
	Ctime Timespec
}

//File-type predicates over the raw mode bits, via the POSIX S_IFMT type field.

func (m EntryMeta) IsDir() bool {
	return m.Mode&syscall.S_IFMT == syscall.S_IFDIR
}

func (m EntryMeta) IsRegular() bool {
	return m.Mode&syscall.S_IFMT == syscall.S_IFREG
}

func (m EntryMeta) IsSymlink() bool {
	return m.Mode&syscall.S_IFMT == syscall.S_IFLNK
}
