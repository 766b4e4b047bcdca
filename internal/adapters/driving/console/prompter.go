package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/charforge/internal/core/domain"
)

// Prompts shown by the validators.
const (
	NamePrompt      = "\nPlease input your name: "
	AgePrompt       = "\nPlease input your age: "
	EyeColorPrompt  = "\nPlease input an eye color: "
	HairColorPrompt = "\nPlease input a hair color: "
)

// Prompter reads validated answers from a line-oriented input.
// Every method retries until it reads a valid answer; the only other way
// out is the input ending, reported as domain.ErrInputClosed.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// NewPrompter creates a prompter over the given input and output.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SetEcho makes the prompter write each answer back after reading it.
// Used when input is piped, so the transcript shows what was answered.
func (p *Prompter) SetEcho(echo bool) {
	p.echo = echo
}

// Line prints prompt and returns the next line with surrounding whitespace
// removed.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a trailing newline is still an answer.
		if !errors.Is(err, io.EOF) || line == "" {
			return "", domain.ErrInputClosed
		}
	}

	line = strings.TrimSpace(line)
	if p.echo {
		fmt.Fprintln(p.out, line)
	}
	return line, nil
}

// Name asks until the answer is non-empty and made only of letters.
func (p *Prompter) Name(prompt string) (string, error) {
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if name, ok := domain.ParseName(raw); ok {
			return name, nil
		}
		fmt.Fprintln(p.out, "\nInvalid input. Please enter only letters.")
	}
}

// Age asks until the answer is a non-negative integer.
func (p *Prompter) Age() (int, error) {
	for {
		raw, err := p.Line(AgePrompt)
		if err != nil {
			return 0, err
		}
		age, err := domain.ParseAge(raw)
		if err == nil {
			return age, nil
		}
		fmt.Fprintf(p.out, "\nInvalid input: %v\n", err)
	}
}

// Color asks until the normalised answer is a member of set.
func (p *Prompter) Color(prompt string, set domain.ColorSet) (string, error) {
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if color, ok := set.Parse(raw); ok {
			return color, nil
		}
		fmt.Fprintf(p.out, "Invalid input: Please enter one of the following: %s.\n", set)
	}
}
