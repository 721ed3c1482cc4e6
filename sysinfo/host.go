package sysinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Hostname returns the host short name, the hostname up to the first dot.
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}
	short, _, _ := strings.Cut(name, ".")
	return short, nil
}

// Timestamp formats t for the report header as DD/MM/YYYY HH:MM:SS.
func Timestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// Summary is the one-line system overview printed under the report header.
type Summary struct {
	Uptime         time.Duration
	Load1          float64
	Load5          float64
	Load15         float64
	MemUsedPercent float64
}

// ReadSummary collects uptime, load averages and memory usage.
func ReadSummary() (Summary, error) {
	up, err := host.Uptime()
	if err != nil {
		return Summary{}, fmt.Errorf("uptime: %w", err)
	}
	avg, err := load.Avg()
	if err != nil {
		return Summary{}, fmt.Errorf("loadavg: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Summary{}, fmt.Errorf("meminfo: %w", err)
	}
	return Summary{
		Uptime:         time.Duration(up) * time.Second,
		Load1:          avg.Load1,
		Load5:          avg.Load5,
		Load15:         avg.Load15,
		MemUsedPercent: vm.UsedPercent,
	}, nil
}
