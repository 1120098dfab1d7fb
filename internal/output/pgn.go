// Package output renders finished games as PGN-like text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Header holds the fixed tag values written above every game.
type Header struct {
	Event string
	Site  string
	Date  string
	Round string
}

// DefaultHeader returns the header used when nothing is configured.
func DefaultHeader() Header {
	return Header{
		Event: "Chess Game",
		Site:  "localhost",
		Date:  "2025.03.11",
		Round: "1",
	}
}

// FormatGame renders the seven tag lines, a blank line and the numbered move
// tokens. Every token is written as "<n>. <token> " with n counting tokens, not
// full moves. Values are written as given.
func FormatGame(h Header, moves []string, white, black, result string) string {
	var sb strings.Builder
	writeGame(&sb, h, moves, white, black, result)
	return sb.String()
}

// WriteGame streams the FormatGame text to w.
func WriteGame(w io.Writer, h Header, moves []string, white, black, result string) error {
	ew := &errWriter{w: w}
	writeGame(ew, h, moves, white, black, result)
	return ew.err
}

func writeGame(w io.Writer, h Header, moves []string, white, black, result string) {
	writeTag(w, "Event", h.Event)
	writeTag(w, "Site", h.Site)
	writeTag(w, "Date", h.Date)
	writeTag(w, "Round", h.Round)
	writeTag(w, "White", white)
	writeTag(w, "Black", black)
	writeTag(w, "Result", result)
	fmt.Fprintln(w)

	for i, token := range moves {
		fmt.Fprintf(w, "%d. %s ", i+1, token)
	}
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, value)
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
