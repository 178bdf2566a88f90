package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("no keywords to match")

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldColorize(writer io.Writer) bool {
	return isTerminal(writer) && os.Getenv("NO_COLOR") == ""
}

// confirmEmptyKeywords asks before running a pass that can only produce the
// identifier column. Without a terminal the pass is refused.
func confirmEmptyKeywords(cmd *cobra.Command) error {
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return fmt.Errorf("%w: pass --keywords, set keywords.terms, or use --allow-empty-keywords", errNotConfirmed)
	}
	ok, err := confirm(in, cmd.ErrOrStderr(), "No keywords given; the result will only contain the identifier column. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: aborted", errNotConfirmed)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true, nil
	default:
		return false, nil
	}
}
