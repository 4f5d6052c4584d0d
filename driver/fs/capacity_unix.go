//go:build unix

package fs

import (
	"context"
	"fmt"

	"github.com/sphynkx/ytstorage/driver"
	"golang.org/x/sys/unix"
)

// Capacity implements driver.CapacityReporter using statfs on the root.
func (d *Driver) Capacity(ctx context.Context) (driver.CapacityInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(d.root, &st); err != nil {
		return driver.CapacityInfo{}, fmt.Errorf("%w: statfs %q: %v", driver.ErrUnavailable, d.root, err)
	}
	bsize := uint64(st.Bsize) //nolint:unconvert // Bsize is int64 on some platforms
	return driver.CapacityInfo{
		TotalBytes: st.Blocks * bsize,
		FreeBytes:  st.Bavail * bsize,
	}, nil
}
