package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads one command per line.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadCommand reads a line and returns it lowercased with surrounding space
// removed. A final line without newline is returned with a nil error.
func (r *Reader) ReadCommand() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// ParseEscapeSequence maps the bytes following ESC to an arrow code.
// Both CSI (ESC [) and SS3 (ESC O) forms are accepted.
func ParseEscapeSequence(seq []byte) string {
	if len(seq) < 2 || (seq[0] != '[' && seq[0] != 'O') {
		return ""
	}
	switch seq[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

var stdinReader *Reader

// GetInput reads a command line from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = NewReader(os.Stdin)
	}
	return stdinReader.ReadCommand()
}

// GetInputWithArrows reads a command from a terminal stdin. Arrow keys
// return immediately without needing Enter; anything else is collected
// until Enter. Falls back to GetInput when stdin is not a terminal.
func GetInputWithArrows() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// The buffered reader must not hold bytes across raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var line []byte
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return "", err
		}
		b := buf[0]

		switch {
		case b == 0x1b:
			seq := make([]byte, 2)
			if _, err := io.ReadFull(os.Stdin, seq); err != nil {
				return "", err
			}
			if code := ParseEscapeSequence(seq); code != "" && len(line) == 0 {
				fmt.Print("\r\n")
				return code, nil
			}
		case b == 3: // Ctrl+C
			fmt.Print("\r\n")
			return "quit", nil
		case b == '\r' || b == '\n':
			fmt.Print("\r\n")
			return strings.ToLower(strings.TrimSpace(string(line))), nil
		case b == 127 || b == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Print(string(b))
		}
	}
}
