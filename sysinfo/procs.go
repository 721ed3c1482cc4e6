package sysinfo

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/andres-b-devops/desafio-03/model"
)

// ListProcesses runs ps aux and parses every output line into a Record. The
// current process and the ps child are excluded so a search never matches
// its own invocation. Malformed lines are skipped with a logged warning.
func ListProcesses(ctx context.Context, logger *log.Logger) ([]model.Record, error) {
	cmd := exec.CommandContext(ctx, "ps", "aux")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ps aux: %w", err)
	}

	exclude := map[string]bool{strconv.Itoa(os.Getpid()): true}
	if cmd.Process != nil {
		exclude[strconv.Itoa(cmd.Process.Pid)] = true
	}
	return parseListing(string(out), exclude, logger), nil
}

// parseListing parses raw ps output: the header row is dropped, malformed
// lines are skipped with a logged warning and excluded pids are filtered
// out.
func parseListing(out string, exclude map[string]bool, logger *log.Logger) []model.Record {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	records := make([]model.Record, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			// header row
			continue
		}
		rec, err := model.ParseLine(line)
		if err != nil {
			logger.Printf("skipping %v", err)
			continue
		}
		if exclude[rec.Pid] {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// FilterProcesses returns the records whose full listing line contains sub,
// ignoring case, preserving listing order.
func FilterProcesses(records []model.Record, sub string) []model.Record {
	matched := make([]model.Record, 0, len(records))
	for _, r := range records {
		if r.Matches(sub) {
			matched = append(matched, r)
		}
	}
	return matched
}
