package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// confirmWrite asks before overwriting an existing file. New files and
// --dangerous-inline runs pass without a prompt.
func confirmWrite(cmd *cobra.Command, dangerousInline bool, target string) error {
	if dangerousInline {
		return nil
	}

	info, err := os.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("check write target %s: %w", target, err)
	case info.IsDir():
		return fmt.Errorf("write target is a directory: %s", target)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s already exists and will be overwritten.\nContinue? [y/N]: ", target)

	input, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && input == "" {
		return fmt.Errorf("write aborted for %s (no confirmation provided; use --dangerous-inline to skip prompts)", target)
	}

	if !approved(input) {
		return fmt.Errorf("write aborted for %s", target)
	}
	return nil
}

func approved(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
