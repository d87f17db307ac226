package archive

import "github.com/shirou/gopsutil/v4/disk"

// FreeBytes returns the free space available on the filesystem that
// contains path, via gopsutil rather than a raw syscall so the check works
// the same way across the platforms the agent is built for (the pack
// carries gopsutil/v4 as an indirect dependency for exactly this kind of
// host-stat concern).
func FreeBytes(path string) (int64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return int64(usage.Free), nil
}

// FitsOnDisk reports whether an archive of the given uncompressed size can
// be safely expanded under path without exhausting free disk space. The
// object is SKIPPED (per the chunk state machine) rather than attempted
// when this returns false.
func FitsOnDisk(path string, uncompressedSize int64) (bool, error) {
	free, err := FreeBytes(path)
	if err != nil {
		return false, err
	}
	return uncompressedSize <= free, nil
}
