// Command poemview displays a poem's revision history as word-level diffs.
//
// Usage:
//
//	poemview [-plain|-summary] [-from N -to M] [-light] history.jsonl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/stevenrichter16/mypoem"
	"github.com/stevenrichter16/mypoem/bubbletea"
	"github.com/stevenrichter16/mypoem/clipboard"
	"github.com/stevenrichter16/mypoem/jsonl"
	"github.com/stevenrichter16/mypoem/lipgloss"
	"github.com/stevenrichter16/mypoem/worddiff"
	"golang.org/x/sync/errgroup"
)

// ErrNoRevisions is returned when the history file holds no revisions.
var ErrNoRevisions = errors.New("no revisions in history")

// ErrNeedTwoRevisions is returned when a diff is requested but the history
// has fewer than two revisions.
var ErrNeedTwoRevisions = errors.New("need at least two revisions to diff")

// App encapsulates the application logic for testing.
type App struct {
	Store  mypoem.RevisionStore
	Differ mypoem.Differ
	Viewer mypoem.Viewer
	Out    io.Writer
	Errs   io.Writer

	FilePath string
	From     int // older revision seq; 0 picks To-1
	To       int // newer revision seq; 0 picks the latest
	Plain    bool
	Summary  bool
}

// Run loads and validates the history, then dispatches to the requested mode.
func (a *App) Run(ctx context.Context) error {
	revisions, err := a.Store.Load(a.FilePath)
	if err != nil {
		return err
	}
	if len(revisions) == 0 {
		return ErrNoRevisions
	}

	for _, verr := range mypoem.ValidateHistory(revisions) {
		fmt.Fprintf(a.Errs, "warning: %v\n", verr)
	}

	switch {
	case a.Summary:
		return a.printSummaries(revisions)
	case a.Plain:
		return a.printPlain(revisions)
	default:
		return a.Viewer.View(ctx, revisions)
	}
}

// printPlain writes an annotated diff of the selected revision pair.
func (a *App) printPlain(revisions []mypoem.Revision) error {
	if len(revisions) < 2 {
		return ErrNeedTwoRevisions
	}

	to := a.To
	if to == 0 {
		to = len(revisions)
	}
	from := a.From
	if from == 0 {
		from = to - 1
	}
	if from < 1 || to > len(revisions) || from >= to {
		return fmt.Errorf("invalid revision range %d..%d (history has %d revisions)", from, to, len(revisions))
	}

	old := revisions[from-1]
	new := revisions[to-1]
	segments := a.Differ.Diff(old.Content, new.Content)

	fmt.Fprintf(a.Out, "Draft %d → Draft %d: %s\n\n", old.Seq, new.Seq, mypoem.FormatSummary(mypoem.Summarize(segments)))
	fmt.Fprint(a.Out, mypoem.FormatSegments(segments))
	return nil
}

// printSummaries writes one line per revision describing how it changed from
// its predecessor. Adjacent pairs are diffed concurrently.
func (a *App) printSummaries(revisions []mypoem.Revision) error {
	summaries := make([]mypoem.ChangeSummary, len(revisions))

	var g errgroup.Group
	for i := 1; i < len(revisions); i++ {
		g.Go(func() error {
			segments := a.Differ.Diff(revisions[i-1].Content, revisions[i].Content)
			summaries[i] = mypoem.Summarize(segments)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, rev := range revisions {
		if i == 0 {
			fmt.Fprintf(a.Out, "Draft %d: %d words, %d lines (%s)\n",
				rev.Seq, rev.WordCount, rev.LineCount, mypoem.ChangeInitial)
			continue
		}
		fmt.Fprintf(a.Out, "Draft %d: %s\n", rev.Seq, mypoem.FormatSummary(summaries[i]))
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		plain   = flag.Bool("plain", false, "print an annotated diff instead of opening the TUI")
		summary = flag.Bool("summary", false, "print per-revision change summaries")
		from    = flag.Int("from", 0, "older revision number (default: one before -to)")
		to      = flag.Int("to", 0, "newer revision number (default: latest)")
		light   = flag.Bool("light", false, "use the light terminal theme")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: poemview [flags] history.jsonl")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Match the terminal background unless overridden.
	theme := mypoem.Theme(lipgloss.DarkTheme())
	if *light || !termenv.HasDarkBackground() {
		theme = lipgloss.LightTheme()
	}

	differ := worddiff.NewDiffer()

	app := &App{
		Store:    jsonl.NewStore(),
		Differ:   differ,
		Viewer:   bubbletea.NewViewer(differ, theme, clipboard.NewPBCopy()),
		Out:      os.Stdout,
		Errs:     os.Stderr,
		FilePath: flag.Arg(0),
		From:     *from,
		To:       *to,
		Plain:    *plain,
		Summary:  *summary,
	}

	return app.Run(ctx)
}
