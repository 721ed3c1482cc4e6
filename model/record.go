package model

import (
	"fmt"
	"strings"
)

// FixedFields is the number of whitespace-separated columns that precede the
// command in a process listing line.
const FixedFields = 10

// Record is one parsed row of the process listing plus the free-text command.
// Fields are kept as display strings; nothing downstream reads them
// numerically. Records are built once per listing line and discarded after
// rendering.
type Record struct {
	User  string
	Pid   string
	CPU   string
	Mem   string
	VSZ   string
	RSS   string
	TTY   string
	Stat  string
	Start string
	Time  string

	// Cmd is the full command line, whitespace-normalized.
	Cmd string

	raw string
}

// ParseLine builds a Record from one listing line: split on runs of
// whitespace, first ten tokens are the fixed fields, the rest rejoined with
// single spaces is the command. Fewer than ten tokens is malformed.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < FixedFields {
		return Record{}, fmt.Errorf("malformed process line (%d of %d fields): %q", len(fields), FixedFields, line)
	}
	return Record{
		User:  fields[0],
		Pid:   fields[1],
		CPU:   fields[2],
		Mem:   fields[3],
		VSZ:   fields[4],
		RSS:   fields[5],
		TTY:   fields[6],
		Stat:  fields[7],
		Start: fields[8],
		Time:  fields[9],
		Cmd:   strings.Join(fields[FixedFields:], " "),
		raw:   line,
	}, nil
}

// Fields returns the ten fixed columns in listing order.
func (r Record) Fields() []string {
	return []string{r.User, r.Pid, r.CPU, r.Mem, r.VSZ, r.RSS, r.TTY, r.Stat, r.Start, r.Time}
}

// Line returns the full listing line the record was parsed from.
func (r Record) Line() string {
	if r.raw != "" {
		return r.raw
	}
	return strings.TrimSpace(strings.Join(append(r.Fields(), r.Cmd), " "))
}

// Matches reports whether the listing line contains sub, ignoring case.
func (r Record) Matches(sub string) bool {
	return strings.Contains(strings.ToLower(r.Line()), strings.ToLower(sub))
}
