//go:build !unix

package fs

import (
	"context"
	"errors"

	"github.com/sphynkx/ytstorage/driver"
)

// Capacity implements driver.CapacityReporter. Not supported on this
// platform; the Info service reports capacity as unavailable.
func (d *Driver) Capacity(ctx context.Context) (driver.CapacityInfo, error) {
	return driver.CapacityInfo{}, errors.ErrUnsupported
}
