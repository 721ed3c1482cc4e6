package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/andres-b-devops/desafio-03/model"
	"github.com/andres-b-devops/desafio-03/render"
	"github.com/andres-b-devops/desafio-03/sysinfo"
)

// ErrInterrupted is returned when an interrupt ends the run; main maps it to
// exit status 1 after printing a notice.
var ErrInterrupted = errors.New("interrupted")

// Driver collects the report sections, owns the interactive search loop and
// renders matches through the table renderer.
type Driver struct {
	out    io.Writer
	in     io.Reader
	logger *log.Logger
	cols   []render.Column
	list   Lister
}

func NewDriver(out io.Writer, in io.Reader, logger *log.Logger) *Driver {
	return &Driver{
		out:    out,
		in:     in,
		logger: logger,
		cols:   render.Columns(),
		list: func(ctx context.Context) ([]model.Record, error) {
			return sysinfo.ListProcesses(ctx, logger)
		},
	}
}

// Run prints the status report, runs the search loop and renders the table
// of matches. Any collector failure aborts the run.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.printReport(); err != nil {
		return err
	}

	matches, err := d.searchLoop(ctx)
	if err != nil {
		return err
	}

	for _, line := range render.RenderTable(matches, d.cols) {
		fmt.Fprintln(d.out, line)
	}
	return nil
}

func (d *Driver) printReport() error {
	hostname, err := sysinfo.Hostname()
	if err != nil {
		return err
	}
	diskPct, err := sysinfo.DiskUsage(sysinfo.RootMount)
	if err != nil {
		return err
	}
	users, err := sysinfo.LoggedUsers()
	if err != nil {
		return err
	}
	sum, err := sysinfo.ReadSummary()
	if err != nil {
		return err
	}

	fmt.Fprintln(d.out, titleStyle.Render("System status report"))
	fmt.Fprintf(d.out, "%s %s\n", labelStyle.Render("Host:"), hostname)
	fmt.Fprintf(d.out, "%s %s\n", labelStyle.Render("Date:"), sysinfo.Timestamp(time.Now()))
	fmt.Fprintf(d.out, "%s %s used on %s\n", labelStyle.Render("Disk:"), diskPct, sysinfo.RootMount)
	fmt.Fprintf(d.out, "%s up %s, load %.2f %.2f %.2f, mem %.0f%% used\n",
		labelStyle.Render("System:"), sum.Uptime, sum.Load1, sum.Load5, sum.Load15, sum.MemUsedPercent)
	fmt.Fprintln(d.out, labelStyle.Render("Logged-in users:"))
	for _, u := range users {
		fmt.Fprintf(d.out, "  %s\n", u)
	}
	fmt.Fprintln(d.out)
	return nil
}

// searchLoop blocks until a search finds at least one process or the run is
// interrupted. With a terminal on stdin it runs the textinput prompt,
// otherwise it reads queries line by line from the input reader.
func (d *Driver) searchLoop(ctx context.Context) ([]model.Record, error) {
	s := NewSearcher(d.list)

	if f, ok := d.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return d.promptLoop(ctx, s)
	}
	return d.lineLoop(ctx, s)
}

func (d *Driver) promptLoop(ctx context.Context, s *Searcher) ([]model.Record, error) {
	prog := tea.NewProgram(newPromptModel(ctx, s),
		tea.WithInput(d.in), tea.WithOutput(d.out), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		switch {
		case errors.Is(err, tea.ErrInterrupted):
			return nil, ErrInterrupted
		case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
			// context canceled by a captured signal
			return nil, ErrInterrupted
		default:
			return nil, fmt.Errorf("search prompt: %w", err)
		}
	}

	m := final.(promptModel)
	switch {
	case m.fatal != nil:
		return nil, m.fatal
	case m.interrupted:
		return nil, ErrInterrupted
	}
	return m.matches, nil
}

func (d *Driver) lineLoop(ctx context.Context, s *Searcher) ([]model.Record, error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(d.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(d.out, "Process to search: ")

		select {
		case <-ctx.Done():
			return nil, ErrInterrupted

		case err := <-readErr:
			if err != nil {
				return nil, fmt.Errorf("read search input: %w", err)
			}
			return nil, errors.New("search input closed without a match")

		case line := <-lines:
			matches, err := s.Submit(ctx, line)
			switch {
			case err == nil:
				fmt.Fprintln(d.out)
				return matches, nil
			case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrNoMatches):
				fmt.Fprintln(d.out, errorStyle.Render(err.Error()))
				s.Reset()
			default:
				return nil, err
			}
		}
	}
}
