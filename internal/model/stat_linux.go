//go:build linux

package model

import "syscall"

//statTimes extracts the platform-specific timestamp fields from syscall.Stat_t.
func statTimes(st *syscall.Stat_t) (atime, mtime, ctime Timespec) {
	atime = Timespec{Sec: int64(st.Atim.Sec), Nsec: int64(st.Atim.Nsec)}
	mtime = Timespec{Sec: int64(st.Mtim.Sec), Nsec: int64(st.Mtim.Nsec)}
	ctime = Timespec{Sec: int64(st.Ctim.Sec), Nsec: int64(st.Ctim.Nsec)}
	return atime, mtime, ctime
}
