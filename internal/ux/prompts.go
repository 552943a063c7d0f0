package ux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for yes/no confirmation on the given streams.
// Destructive commands (company delete, admin delete) gate on it
// unless --yes was passed.
func Confirm(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	reader := bufio.NewReader(in)

	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Fprint(out, prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultYes
	}
	return response == "y" || response == "yes"
}
