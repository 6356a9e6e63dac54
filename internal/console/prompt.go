package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	backspace = '\b'
	del       = 0x7f
)

// Prompter reads user input line by line.
type Prompter struct {
	in  *bufio.Reader
	out *Printer
}

// NewPrompter creates a Prompter reading from r and echoing prompts through p.
func NewPrompter(r io.Reader, p *Printer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: p}
}

// ReadOption blocks until the user enters a single digit and returns it.
// Anything else rings the bell and prompts again. Backspace and DEL
// characters erase the previous character before the input is judged.
// Returns io.EOF once input is exhausted.
func (pr *Prompter) ReadOption(prompt string) (string, error) {
	for {
		pr.out.Print(prompt)
		line, err := pr.readLine()
		if err != nil {
			return "", err
		}

		input := strings.TrimSpace(EraseBackspaces(line))
		if len(input) == 1 && input[0] >= '0' && input[0] <= '9' {
			return input, nil
		}
		pr.out.Bell()
	}
}

// ReadPath prompts for a file path. An empty answer returns def.
func (pr *Prompter) ReadPath(prompt, def string) (string, error) {
	pr.out.Println(prompt)
	line, err := pr.readLine()
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(EraseBackspaces(line))
	if path == "" {
		return def, nil
	}
	return path, nil
}

// Pause prints msg and waits for a line of input.
func (pr *Prompter) Pause(msg string) error {
	pr.out.Print("\n" + msg)
	_, err := pr.readLine()
	return err
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned with a nil error.
func (pr *Prompter) readLine() (string, error) {
	line, err := pr.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// EraseBackspaces applies backspace and DEL characters in s to the
// characters before them.
func EraseBackspaces(s string) string {
	if !strings.ContainsAny(s, "\b\x7f") {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == backspace || r == del {
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
