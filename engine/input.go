package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"painters/game"
)

var ErrMalformedInput = errors.New("malformed input")

// Counts come from untrusted input, cap what is allocated up front.
const maxPrealloc = 1024

// Case is one problem instance as it appears in the input.
type Case struct {
	Sides   int
	A       game.Position
	B       game.Position
	Blocked []game.Position
}

// State validates the case and builds its initial game state.
func (c Case) State() (*game.State, error) {
	board, err := game.NewBoard(c.Sides)
	if err != nil {
		return nil, err
	}
	return game.NewState(board, c.A, c.B, c.Blocked)
}

type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (t *tokenReader) nextInt(field string) (int, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", field, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, field)
	}
	v, err := strconv.Atoi(t.scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, field, t.scanner.Text())
	}
	return v, nil
}

func (t *tokenReader) nextPosition(field string) (game.Position, error) {
	row, err := t.nextInt(field + " row")
	if err != nil {
		return game.Position{}, err
	}
	col, err := t.nextInt(field + " col")
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{Row: row, Col: col}, nil
}

// ReadCases parses a case count followed by that many cases of the form
//
//	S Ar Ac Br Bc K
//	Kr Kc (K times)
//
// Tokens may be split across lines arbitrarily.
func ReadCases(r io.Reader) ([]Case, error) {
	tokens := newTokenReader(r)

	n, err := tokens.nextInt("case count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative case count %d", ErrMalformedInput, n)
	}

	cases := make([]Case, 0, min(n, maxPrealloc))
	for i := 1; i <= n; i++ {
		c, err := readCase(tokens)
		if err != nil {
			return nil, fmt.Errorf("case #%d: %w", i, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func readCase(tokens *tokenReader) (Case, error) {
	var c Case
	var err error

	if c.Sides, err = tokens.nextInt("side length"); err != nil {
		return c, err
	}
	if c.A, err = tokens.nextPosition("player A"); err != nil {
		return c, err
	}
	if c.B, err = tokens.nextPosition("player B"); err != nil {
		return c, err
	}
	k, err := tokens.nextInt("blocked count")
	if err != nil {
		return c, err
	}
	if k < 0 {
		return c, fmt.Errorf("%w: negative blocked count %d", ErrMalformedInput, k)
	}

	c.Blocked = make([]game.Position, 0, min(k, maxPrealloc))
	for j := 0; j < k; j++ {
		p, err := tokens.nextPosition(fmt.Sprintf("blocked cell %d", j+1))
		if err != nil {
			return c, err
		}
		c.Blocked = append(c.Blocked, p)
	}
	return c, nil
}

// WriteCases formats cases in the input format read by ReadCases.
func WriteCases(w io.Writer, cases []Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(cases))
	for _, c := range cases {
		fmt.Fprintf(bw, "%d %d %d %d %d %d\n", c.Sides, c.A.Row, c.A.Col, c.B.Row, c.B.Col, len(c.Blocked))
		for _, p := range c.Blocked {
			fmt.Fprintf(bw, "%d %d\n", p.Row, p.Col)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write cases: %w", err)
	}
	return nil
}
