package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andres-b-devops/desafio-03/model"
)

func fakeLister(t *testing.T, calls *int, lines ...string) Lister {
	t.Helper()
	records := make([]model.Record, 0, len(lines))
	for _, line := range lines {
		rec, err := model.ParseLine(line)
		require.NoError(t, err)
		records = append(records, rec)
	}
	return func(context.Context) ([]model.Record, error) {
		*calls++
		return records, nil
	}
}

func TestSearcherEmptyQuerySkipsListing(t *testing.T) {
	calls := 0
	s := NewSearcher(fakeLister(t, &calls,
		"root 1 0.0 0.1 16936 1024 ? Ss 09:14 0:01 /sbin/init",
	))

	_, err := s.Submit(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, Empty, s.State())
	assert.Zero(t, calls, "empty input must not query the process listing")

	s.Reset()
	assert.Equal(t, Prompting, s.State())
}

func TestSearcherWhitespaceQueryIsEmpty(t *testing.T) {
	calls := 0
	s := NewSearcher(fakeLister(t, &calls, "root 1 0.0 0.1 16936 1024 ? Ss 09:14 0:01 init"))

	_, err := s.Submit(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, calls)
}

func TestSearcherNoMatchesReturnsToPrompting(t *testing.T) {
	calls := 0
	s := NewSearcher(fakeLister(t, &calls,
		"root 1 0.0 0.1 16936 1024 ? Ss 09:14 0:01 /sbin/init",
	))

	_, err := s.Submit(context.Background(), "postgres")
	require.ErrorIs(t, err, ErrNoMatches)
	assert.Equal(t, Prompting, s.State())
	assert.Equal(t, 1, calls)

	// the loop is unbounded: a later attempt can still succeed
	matches, err := s.Submit(context.Background(), "init")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, Found, s.State())
}

func TestSearcherFoundIsTerminal(t *testing.T) {
	calls := 0
	s := NewSearcher(fakeLister(t, &calls,
		"root 1 0.0 0.1 16936 1024 ? Ss 09:14 0:01 /sbin/init",
		"www 42 1.2 3.4 100 200 ? S 10:00 0:09 nginx worker",
		"www 43 1.0 3.1 100 200 ? S 10:00 0:07 nginx worker",
	))

	matches, err := s.Submit(context.Background(), "NGINX")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "42", matches[0].Pid)
	assert.Equal(t, "43", matches[1].Pid)
	assert.Equal(t, Found, s.State())
	assert.Equal(t, matches, s.Matches())

	s.Reset()
	assert.Equal(t, Found, s.State(), "Found is terminal")
}

func TestSearcherListerFailureIsFatal(t *testing.T) {
	boom := errors.New("ps exploded")
	s := NewSearcher(func(context.Context) ([]model.Record, error) {
		return nil, boom
	})

	_, err := s.Submit(context.Background(), "init")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEmptyQuery)
	assert.NotErrorIs(t, err, ErrNoMatches)
}
