// Package script parses move scripts: plain text files that describe one game
// as a list of from/to square pairs.
//
// A script holds optional tag lines, comments and move lines:
//
//	[White "Ann"]
//	[Black "Ben"]
//	# Fool's mate
//	f2 f3  e7e5
//	g2-g4  d8 h4
//
// Moves alternate between White and Black starting with the side to move of
// the start position. A [Placement "..."] tag sets a custom start position.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessme-go/internal/chess"
	"github.com/lgbarn/chessme-go/internal/engine"
	"github.com/lgbarn/chessme-go/internal/errors"
)

// Move is one from/to pair and the line it was read from.
type Move struct {
	From chess.Square
	To   chess.Square
	Line int
}

// Script is a parsed move script.
type Script struct {
	Name  string
	Tags  map[string]string
	Moves []Move
}

// Tag returns the value of a tag, or def when the tag is missing or empty.
func (s *Script) Tag(name, def string) string {
	if v := s.Tags[name]; v != "" {
		return v
	}
	return def
}

// Start returns the start position: the Placement tag when present,
// otherwise the standard opening with White to move.
func (s *Script) Start() (chess.Board, chess.Player, error) {
	placement, ok := s.Tags["Placement"]
	if !ok {
		return chess.NewBoard(), chess.White, nil
	}
	board, side, err := engine.DecodePlacement(placement)
	if err != nil {
		return chess.Board{}, chess.White, &errors.ParseError{Err: err, File: s.Name, Got: placement}
	}
	return board, side, nil
}

// Parse reads a script from r. name is used in error messages only.
func Parse(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name, Tags: map[string]string{}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(scanner.Text()))

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "["):
			key, value, err := parseTag(line)
			if err != nil {
				return nil, &errors.ParseError{Err: err, File: name, Line: lineNo, Got: line}
			}
			s.Tags[key] = value
		default:
			moves, err := parseMoves(line, lineNo, name)
			if err != nil {
				return nil, err
			}
			s.Moves = append(s.Moves, moves...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// parseTag parses `[Name "value"]`.
func parseTag(line string) (string, string, error) {
	if !strings.HasSuffix(line, "]") {
		return "", "", errors.Wrap(errors.ErrScriptSyntax, "tag not closed")
	}
	body := strings.TrimSpace(line[1 : len(line)-1])

	key, rest, found := strings.Cut(body, " ")
	rest = strings.TrimSpace(rest)
	if !found || key == "" {
		return "", "", errors.Wrap(errors.ErrScriptSyntax, "tag without value")
	}
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", errors.Wrap(errors.ErrScriptSyntax, "tag value must be quoted")
	}
	return key, rest[1 : len(rest)-1], nil
}

// parseMoves splits a move line into squares. "e2-e4" and "e2e4" are split
// into two squares; "e2 e4" pairs consecutive squares.
func parseMoves(line string, lineNo int, name string) ([]Move, error) {
	var squares []string
	for _, field := range strings.Fields(line) {
		field = strings.ReplaceAll(field, "-", "")
		if len(field) == 4 {
			squares = append(squares, field[:2], field[2:])
			continue
		}
		squares = append(squares, field)
	}

	if len(squares)%2 != 0 {
		return nil, &errors.ParseError{
			Err:  errors.Wrap(errors.ErrScriptSyntax, "move without destination"),
			File: name,
			Line: lineNo,
			Got:  squares[len(squares)-1],
		}
	}

	moves := make([]Move, 0, len(squares)/2)
	for i := 0; i < len(squares); i += 2 {
		from, err := parseSquare(squares[i], lineNo, name)
		if err != nil {
			return nil, err
		}
		to, err := parseSquare(squares[i+1], lineNo, name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, Move{From: from, To: to, Line: lineNo})
	}
	return moves, nil
}

func parseSquare(text string, lineNo int, name string) (chess.Square, error) {
	sq, err := chess.ParseSquare(strings.ToLower(text))
	if err != nil {
		return chess.Square{}, &errors.ParseError{
			Err:  fmt.Errorf("%w: %w", errors.ErrScriptSyntax, err),
			File: name,
			Line: lineNo,
			Got:  text,
		}
	}
	return sq, nil
}
