//go:build darwin

package model

import "syscall"

//statTimes extracts the platform-specific timestamp fields from syscall.Stat_t.
func statTimes(st *syscall.Stat_t) (atime, mtime, ctime Timespec) {
	atime = Timespec{Sec: int64(st.Atimespec.Sec), Nsec: int64(st.Atimespec.Nsec)}
	mtime = Timespec{Sec: int64(st.Mtimespec.Sec), Nsec: int64(st.Mtimespec.Nsec)}
	ctime = Timespec{Sec: int64(st.Ctimespec.Sec), Nsec: int64(st.Ctimespec.Nsec)}
	return atime, mtime, ctime
}
