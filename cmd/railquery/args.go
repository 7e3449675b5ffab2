package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readArgs resolves the -args flag. "@path" reads a file, "-" reads stdin and
// anything else is taken as inline JSON. Empty means no arguments.
func readArgs(flagValue string) ([]byte, error) {
	return readArgsFrom(flagValue, os.Stdin)
}

func readArgsFrom(flagValue string, stdin io.Reader) ([]byte, error) {
	switch {
	case flagValue == "":
		return nil, nil
	case flagValue == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	case strings.HasPrefix(flagValue, "@"):
		path := strings.TrimPrefix(flagValue, "@")
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return b, nil
	default:
		return []byte(flagValue), nil
	}
}
