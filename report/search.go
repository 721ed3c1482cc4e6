package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andres-b-devops/desafio-03/model"
	"github.com/andres-b-devops/desafio-03/sysinfo"
)

// State of the interactive search loop.
type State int

const (
	// Prompting awaits user input.
	Prompting State = iota
	// Searching is querying the process listing.
	Searching
	// Empty rejected blank input; Reset returns to Prompting.
	Empty
	// Found is the terminal state: at least one record matched.
	Found
)

var (
	ErrEmptyQuery = errors.New("search term must not be empty")
	ErrNoMatches  = errors.New("no processes found")
)

// Lister produces the live process listing.
type Lister func(ctx context.Context) ([]model.Record, error)

// Searcher is the search loop state machine. Submit runs one attempt:
// blank input ends in Empty without querying the lister, zero matches
// returns to Prompting, a hit ends in Found. The lister is injected so the
// machine can be driven without a terminal or a real process table.
type Searcher struct {
	list    Lister
	state   State
	matches []model.Record
}

func NewSearcher(list Lister) *Searcher {
	return &Searcher{list: list, state: Prompting}
}

func (s *Searcher) State() State { return s.state }

// Matches returns the records of the Found state, in listing order.
func (s *Searcher) Matches() []model.Record { return s.matches }

// Reset returns the machine to Prompting after a recoverable failure.
func (s *Searcher) Reset() {
	if s.state != Found {
		s.state = Prompting
	}
}

// Submit runs one search attempt. ErrEmptyQuery and ErrNoMatches are
// recoverable, the caller re-prompts; any other error is fatal.
func (s *Searcher) Submit(ctx context.Context, query string) ([]model.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.state = Empty
		return nil, ErrEmptyQuery
	}

	s.state = Searching
	records, err := s.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("process listing: %w", err)
	}

	matched := sysinfo.FilterProcesses(records, query)
	if len(matched) == 0 {
		s.state = Prompting
		return nil, fmt.Errorf("%w matching %q", ErrNoMatches, query)
	}

	s.state = Found
	s.matches = matched
	return matched, nil
}
