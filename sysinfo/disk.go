package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// RootMount is the mount point the report covers.
const RootMount = "/"

// DiskUsage returns the used percentage of the filesystem mounted at path as
// a display string.
func DiskUsage(path string) (string, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return "", fmt.Errorf("disk usage %s: %w", path, err)
	}
	return fmt.Sprintf("%.0f%%", u.UsedPercent), nil
}
