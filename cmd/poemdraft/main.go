// Command poemdraft generates the next draft of a poem with Gemini and
// records it in the revision history.
//
// Usage:
//
//	GEMINI_API_KEY=... poemdraft -subject "the moon" history.jsonl
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
	"time"

	"github.com/stevenrichter16/mypoem"
	"github.com/stevenrichter16/mypoem/gemini"
	"github.com/stevenrichter16/mypoem/jsonl"
	"github.com/stevenrichter16/mypoem/worddiff"
)

// ErrNoSubject is returned when no poem subject is provided.
var ErrNoSubject = errors.New("a poem subject is required")

// App encapsulates the application logic for testing.
type App struct {
	Store   mypoem.RevisionStore
	Drafter mypoem.Drafter
	Differ  mypoem.Differ
	Out     io.Writer

	FilePath string
	Subject  string
	Now      func() time.Time // defaults to time.Now
}

// Run generates the next draft, appends it to the history and saves it.
func (a *App) Run(ctx context.Context) error {
	if a.Subject == "" {
		return ErrNoSubject
	}

	now := a.Now
	if now == nil {
		now = time.Now
	}

	revisions, err := a.Store.Load(a.FilePath)
	if err != nil {
		return err
	}

	var previous string
	if len(revisions) > 0 {
		previous = revisions[len(revisions)-1].Content
	}

	draft, err := a.Drafter.Draft(ctx, mypoem.DraftRequest{
		Subject:  a.Subject,
		Previous: previous,
	})
	if err != nil {
		return fmt.Errorf("drafting: %w", err)
	}

	seq := len(revisions) + 1
	rev := mypoem.NewRevision(fmt.Sprintf("r%d", seq), seq, draft, now().UTC())

	var summary mypoem.ChangeSummary
	if previous == "" {
		rev.ChangeKind = mypoem.ChangeInitial
	} else {
		summary = mypoem.Summarize(a.Differ.Diff(previous, draft))
		rev.ChangeKind = summary.Kind()
	}

	revisions = append(revisions, rev)
	if err := a.Store.Save(a.FilePath, revisions); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	if rev.ChangeKind == mypoem.ChangeInitial {
		fmt.Fprintf(a.Out, "Draft %d saved: %d words, %d lines (%s)\n\n",
			rev.Seq, rev.WordCount, rev.LineCount, rev.ChangeKind)
	} else {
		fmt.Fprintf(a.Out, "Draft %d saved: %s\n\n", rev.Seq, mypoem.FormatSummary(summary))
	}
	fmt.Fprint(a.Out, draft)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	subject := flag.String("subject", "", "what the poem is about")
	model := flag.String("model", gemini.DefaultModel, "Gemini model to use")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: poemdraft -subject <subject> history.jsonl")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable required")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("creating Gemini client: %w", err)
	}
	defer client.Close()

	app := &App{
		Store:    jsonl.NewStore(),
		Drafter:  gemini.NewDrafter(client, *model),
		Differ:   worddiff.NewDiffer(),
		Out:      os.Stdout,
		FilePath: flag.Arg(0),
		Subject:  *subject,
	}

	return app.Run(ctx)
}
