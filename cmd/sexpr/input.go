package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readInputs returns the expressions given as arguments, or one per line of
// in when there are none or the only argument is "-".
func readInputs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}

	inputs := []string{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return inputs, nil
}
