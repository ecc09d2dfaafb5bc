package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads a single JSON value of type T from a --file flag or
// stdin. "-" as the file path means stdin explicitly.
type FileReader[T any] struct {
	fileFlagValue string
}

// Flag returns the CLI flag wired to this reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Read decodes the input into T. Input must be exactly one JSON
// document; trailing content is an error.
func (fr *FileReader[T]) Read() (T, error) {
	var reader io.Reader
	var input T

	switch fr.fileFlagValue {
	case "", "-":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = os.Stdin
	default:
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	dec := json.NewDecoder(reader)
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON input: %w", err)
	}
	if dec.More() {
		return input, fmt.Errorf("decode JSON input: trailing content after document")
	}

	return input, nil
}
