// Package session drives the interactive deletion loop.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"diskpie/internal/chart"
	"diskpie/internal/scanner"
	"diskpie/internal/ui"
)

// Deleter confirms a deletion with the operator and performs it. It
// reports whether the file is actually gone; a declined prompt is a
// false result with no error.
type Deleter interface {
	ConfirmAndDelete(path string) (bool, error)
}

// DrawFunc renders the current slice set. The session rebuilds the
// slices on every iteration and hands them over untouched.
type DrawFunc func(w io.Writer, slices []chart.Slice)

// Session walks the operator through the ranked candidates one page at
// a time. The candidate list is immutable for the session's lifetime;
// deletions are tracked as a per-page set of gone slots so the page
// numbering never shifts, and as a decrement of the live byte total.
type Session struct {
	files     []scanner.File
	liveTotal uint64
	offset    int
	deleted   map[int]struct{}
	deleter   Deleter
	in        *bufio.Reader
	out       io.Writer
	draw      DrawFunc
}

func New(result *scanner.Result, deleter Deleter, in io.Reader, out io.Writer, draw DrawFunc) *Session {
	return &Session{
		files:     result.Files,
		liveTotal: result.TotalSize,
		deleted:   make(map[int]struct{}),
		deleter:   deleter,
		in:        bufio.NewReader(in),
		out:       out,
		draw:      draw,
	}
}

// Run loops until the operator quits, the pages run out, or nothing is
// left to show. Every iteration renders the chart for the current
// state and then blocks for one line of input.
func (s *Session) Run() error {
	for {
		if s.exhausted() {
			fmt.Fprintln(s.out, ui.InfoStyle().Render("No files left, quitting."))
			return nil
		}

		s.draw(s.out, chart.Build(s.files, s.offset, s.liveTotal, s.deleted))
		fmt.Fprintf(s.out, "\nTop %d file sizes are shown above. Enter a number to delete, type n to show the next %d files or q to quit.\n",
			chart.PageSize, chart.PageSize)
		fmt.Fprint(s.out, "Input: ")

		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.handle(strings.ToUpper(strings.TrimSpace(line))) {
			return nil
		}
	}
}

// exhausted is checked before every render: an empty candidate list or
// a live total of zero ends the session without another prompt.
func (s *Session) exhausted() bool {
	return s.liveTotal == 0 || len(s.files) == 0
}

// handle applies one operator command and reports whether the session
// is done.
func (s *Session) handle(command string) bool {
	switch command {
	case "N":
		return s.nextPage()
	case "Q":
		return true
	default:
		s.deleteSlot(command)
		return false
	}
}

func (s *Session) nextPage() bool {
	if s.offset+chart.PageSize >= len(s.files) {
		fmt.Fprintln(s.out, ui.InfoStyle().Render("No files left, quitting."))
		return true
	}
	s.offset += chart.PageSize
	s.deleted = make(map[int]struct{})
	return false
}

func (s *Session) deleteSlot(command string) {
	number, err := strconv.Atoi(command)
	if err != nil {
		fmt.Fprintln(s.out, ui.ErrorStyle().Render("Not a valid number"))
		return
	}

	slot := number - 1
	if number < 1 || number > chart.PageSize || s.offset+slot >= len(s.files) {
		fmt.Fprintln(s.out, ui.ErrorStyle().Render("Invalid choice"))
		return
	}
	if _, gone := s.deleted[slot]; gone {
		fmt.Fprintln(s.out, ui.ErrorStyle().Render("Invalid choice"))
		return
	}

	file := s.files[s.offset+slot]
	removed, err := s.deleter.ConfirmAndDelete(file.Path)
	if err != nil {
		fmt.Fprintln(s.out, ui.ErrorStyle().Render(fmt.Sprintf("Couldn't delete file: %v", err)))
		return
	}
	if !removed {
		return
	}

	s.deleted[slot] = struct{}{}
	s.liveTotal -= file.Size
	fmt.Fprintln(s.out, ui.SuccessStyle().Render("File deleted"))
}
