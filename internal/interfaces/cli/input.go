package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmanzanog/employee-roster/internal/domain"
)

// prompter reads one trimmed line per prompt, of any length. A closed input
// surfaces as io.EOF.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// inputError is a failure of the underlying reader, as opposed to bad text.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "reading input: " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &inputError{err: err}
		}
		// A final line without a newline still counts.
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) readInt(label string) (int, error) {
	line, err := p.readLine(label)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, line)
	}
	return v, nil
}

func (p *prompter) readFloat(label string) (float64, error) {
	line, err := p.readLine(label)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, line)
	}
	return v, nil
}
