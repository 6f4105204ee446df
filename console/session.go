// SPDX-License-Identifier: MIT
// Package console runs the interactive building-to-building navigation loop.
//
// One round of a session:
//
//	1. prompt for a start building ("#" ends the session)
//	2. prompt for a destination building, re-prompting until one matches
//	3. print both buildings and their nearest footway nodes
//	4. route between the nodes and print the distance and the node path,
//	   or report that the destination is unreachable
//
// Numbers are printed with 8 significant digits. End of input ends the
// session the same way "#" does. Canceling the context ends it too, even
// while a prompt is waiting for input.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/footpath/campus"
	"github.com/katalvlaran/footpath/dijkstra"
	"github.com/katalvlaran/footpath/geo"
)

// Prompts and fixed output lines.
const (
	PromptStart       = "Enter start (partial name or abbreviation), or #> "
	PromptDestination = "Enter destination (partial name or abbreviation)> "
	QuitToken         = "#"

	msgStartNotFound = "Start building not found"
	msgDestNotFound  = "Destination building not found"
	msgUnreachable   = "Sorry, destination unreachable"
	msgNoFootway     = "Sorry, no footway near "
	msgNavigating    = "Navigating with Dijkstra..."
	msgDone          = "** Done **"
)

// Router resolves queries to buildings and nodes and routes between nodes.
// *campus.Navigator implements it.
type Router interface {
	FindBuilding(query string) (campus.Building, bool)
	NearestNode(b campus.Building) (campus.Node, bool)
	Route(from, to int64) (float64, []int64, error)
}

// Session is one interactive run over In/Out.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Router Router
	Logger *slog.Logger // optional
	Color  bool         // colorize status lines
}

// ErrNilRouter is returned by Run when Router is unset.
var ErrNilRouter = errors.New("console: router is nil")

// errQuit ends the loop on "#" or end of input.
var errQuit = errors.New("quit")

// input is one line, or the terminal read error, from the reader goroutine.
type input struct {
	text string
	err  error
	eof  bool
}

type runner struct {
	s     *Session
	lines <-chan input
	out   *bufio.Writer
	log   *slog.Logger
	warn  *color.Color
	fail  *color.Color
	good  *color.Color
	bold  *color.Color
	round int
}

// Run executes rounds until the user quits, input ends or ctx is done.
// It returns nil on a normal quit and ctx.Err() on cancellation.
//
// Input is read on a separate goroutine. A Read that never returns keeps
// that goroutine parked after Run has returned on cancellation; it exits
// as soon as the Read does.
func (s *Session) Run(ctx context.Context) error {
	if s.Router == nil {
		return ErrNilRouter
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	defer close(done)

	r := &runner{
		s:     s,
		lines: readLines(s.In, done),
		out:  bufio.NewWriter(s.Out),
		log:  s.Logger,
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
		good: color.New(color.FgGreen),
		bold: color.New(color.Bold),
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for _, c := range []*color.Color{r.warn, r.fail, r.good, r.bold} {
		if s.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	defer r.out.Flush()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.playRound(ctx)
		if errors.Is(err, errQuit) {
			r.bold.Fprintln(r.out, msgDone)
			return nil
		}
		if err != nil {
			return err
		}
		if err := r.out.Flush(); err != nil {
			return err
		}
	}
}

// playRound runs one start/destination/route round.
func (r *runner) playRound(ctx context.Context) error {
	r.round++
	start, err := r.ask(ctx, PromptStart, msgStartNotFound, true)
	if err != nil {
		return err
	}
	dest, err := r.ask(ctx, PromptDestination, msgDestNotFound, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "Starting point:")
	printBuilding(r.out, start)
	fmt.Fprintln(r.out, "Destination point: ")
	printBuilding(r.out, dest)
	fmt.Fprintln(r.out)

	from, ok := r.s.Router.NearestNode(start)
	if !ok {
		r.fail.Fprintln(r.out, msgNoFootway+start.Name)
		return nil
	}
	to, ok := r.s.Router.NearestNode(dest)
	if !ok {
		r.fail.Fprintln(r.out, msgNoFootway+dest.Name)
		return nil
	}
	fmt.Fprintln(r.out, "Nearest start node:")
	printNode(r.out, from)
	fmt.Fprintln(r.out, "Nearest destination node:")
	printNode(r.out, to)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, msgNavigating)

	miles, path, err := r.s.Router.Route(from.ID, to.ID)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		r.log.Info("console: unreachable", "round", r.round, "from", from.ID, "to", to.ID)
		r.fail.Fprintln(r.out, msgUnreachable)
		return nil
	case err != nil:
		return fmt.Errorf("console: route %d -> %d: %w", from.ID, to.ID, err)
	}
	r.log.Info("console: routed", "round", r.round, "from", start.Abbrev, "to", dest.Abbrev,
		"miles", miles, "hops", len(path)-1)

	r.good.Fprintf(r.out, "Distance to dest: %s miles\n", geo.FormatFloat(miles))
	fmt.Fprintf(r.out, "Path: %s\n", joinPath(path))

	return nil
}

// ask prompts until a building matches. quit enables the "#" token.
func (r *runner) ask(ctx context.Context, prompt, miss string, quit bool) (campus.Building, error) {
	for {
		fmt.Fprint(r.out, prompt)
		if err := r.out.Flush(); err != nil {
			return campus.Building{}, err
		}
		var in input
		select {
		case <-ctx.Done():
			r.log.Debug("console: canceled at prompt", "round", r.round)
			fmt.Fprintln(r.out)
			return campus.Building{}, ctx.Err()
		case in = <-r.lines:
		}
		if in.err != nil {
			return campus.Building{}, fmt.Errorf("console: read: %w", in.err)
		}
		if in.eof {
			return campus.Building{}, errQuit
		}
		line := strings.TrimRight(in.text, "\r")
		if quit && line == QuitToken {
			return campus.Building{}, errQuit
		}
		if b, ok := r.s.Router.FindBuilding(line); ok {
			return b, nil
		}
		r.log.Debug("console: no match", "query", line)
		r.warn.Fprintln(r.out, miss)
	}
}

// readLines scans r on its own goroutine. The channel yields every line,
// then one final input carrying eof or the read error. The goroutine stops
// early once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan input {
	lines := make(chan input)
	go func() {
		send := func(in input) bool {
			select {
			case lines <- in:
				return true
			case <-done:
				return false
			}
		}
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !send(input{text: sc.Text()}) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			send(input{err: err})
			return
		}
		send(input{eof: true})
	}()

	return lines
}

func printBuilding(w io.Writer, b campus.Building) {
	fmt.Fprintf(w, " %s\n %s\n", b.Name, b.Coordinates)
}

func printNode(w io.Writer, n campus.Node) {
	fmt.Fprintf(w, " %d\n %s\n", n.ID, n.Coordinates)
}

func joinPath(path []int64) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, "->")
}
