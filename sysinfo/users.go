package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// LoggedUsers returns the user name of every active session in session
// order. A user logged in more than once appears once per session.
func LoggedUsers() ([]string, error) {
	stats, err := host.Users()
	if err != nil {
		return nil, fmt.Errorf("logged users: %w", err)
	}
	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.User)
	}
	return names, nil
}
