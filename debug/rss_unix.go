//go:build unix

package debug

import "golang.org/x/sys/unix"

// processRSS returns the peak resident set size in bytes, or 0 when the
// query fails. Linux reports Maxrss in kilobytes.
func processRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss) * 1024
}
