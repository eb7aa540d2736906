//go:build !unix

package debug

// processRSS is unavailable on this platform.
func processRSS() uint64 { return 0 }
