package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/side/internal/highlighter"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages and file extensions side recognizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		setColor(useColor(cmd, os.Stdout))
		return listLanguages(os.Stdout, highlighter.NewStack(cfg.Syntax))
	},
}

func listLanguages(w io.Writer, stack *highlighter.Stack) error {
	languages := stack.Registry.All()
	if len(languages) == 0 {
		_, err := fmt.Fprintln(w, "no languages configured; every file is plain text")
		return err
	}

	printHeading(w, "%-12s %-8s %s", "LANGUAGE", "RULES", "EXTENSIONS")
	for _, l := range languages {
		rules := len(stack.Cache.Load(l.Name).Rules)
		fmt.Fprintf(w, "%-12s %-8d ", l.Name, rules)
		exts := make([]string, len(l.Extensions))
		for i, ext := range l.Extensions {
			exts[i] = "." + strings.TrimPrefix(ext, ".")
		}
		dimColor.Fprintln(w, strings.Join(exts, " "))
	}
	return nil
}
