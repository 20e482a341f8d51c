package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// promptPassword asks for a password. On a terminal it is read without
// echo; otherwise one line is read from the input, so scripts can pipe it.
func (a *App) promptPassword(prompt string) (string, error) {
	fmt.Fprint(a.errOut, prompt+": ")

	if a.stdinIsTerminal() {
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", fmt.Errorf("cli: reading password: %w", err)
		}
		return string(pw), nil
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("cli: reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
