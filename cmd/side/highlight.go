package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bethropolis/side/internal/buffer"
	"github.com/bethropolis/side/internal/highlighter"
	"github.com/bethropolis/side/internal/types"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] FILE...",
	Short: "Print files with syntax highlighting",
	Long: `Highlight resolves each file's language the same way the editor does and
prints it with ANSI colors. Files are processed in parallel and printed in
argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHighlight,
}

func init() {
	highlightCmd.Flags().StringP("language", "l", "", "force a language instead of resolving by extension")
	highlightCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "number of files highlighted concurrently")
}

// highlightedFile is the result for one input file.
type highlightedFile struct {
	Path     string
	Language string
	Lines    [][]types.HighlightSpan
	Err      error
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cfg, closeLog, err := setup()
	if err != nil {
		return err
	}
	defer closeLog()

	language, err := cmd.Flags().GetString("language")
	if err != nil {
		return fmt.Errorf("failed to get language flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	stack := highlighter.NewStack(cfg.Syntax)
	results, err := highlightFiles(cmd.Context(), stack, args, language, jobs)
	if err != nil {
		return err
	}

	colorOn := useColor(cmd, os.Stdout)
	setColor(colorOn)
	return writeResults(os.Stdout, os.Stderr, results, colorOn)
}

// highlightFiles highlights every path concurrently with one shared rule
// cache. Per-file failures are reported in the results, not as an error.
func highlightFiles(ctx context.Context, stack *highlighter.Stack, paths []string, language string, jobs int) ([]highlightedFile, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}

	results := make([]highlightedFile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := highlightedFile{Path: path, Language: language}
			data, err := os.ReadFile(path)
			if err != nil {
				res.Err = fmt.Errorf("failed to read %s: %w", path, err)
				results[i] = res
				return nil
			}
			if err := buffer.CheckText(string(data)); err != nil {
				res.Err = fmt.Errorf("%s: %w", path, err)
				results[i] = res
				return nil
			}
			if res.Language == "" {
				res.Language = stack.Resolver.Resolve(path)
			}
			res.Lines = stack.Highlighter.HighlightLines(buffer.SplitLines(string(data)), res.Language)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults prints each file, with a heading when there is more than one.
// A single file is reproduced byte for byte; with several files, one that
// lacks a final newline gets one so the next heading starts a line.
func writeResults(out, errOut io.Writer, results []highlightedFile, colorOn bool) error {
	renderer := lipgloss.NewRenderer(out)
	if colorOn {
		renderer.SetColorProfile(termenv.TrueColor)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	styles := make(map[string]lipgloss.Style)
	styleFor := func(c string) lipgloss.Style {
		style, ok := styles[c]
		if !ok {
			style = renderer.NewStyle().Foreground(lipgloss.Color(c)).TabWidth(lipgloss.NoTabConversion)
			styles[c] = style
		}
		return style
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			printError(errOut, res.Err)
			continue
		}
		multi := len(results) > 1
		if multi {
			printHeading(out, "==> %s (%s)", res.Path, res.Language)
		}
		var b strings.Builder
		for i, line := range res.Lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			for _, span := range line {
				b.WriteString(styleFor(span.Color).Render(span.Text))
			}
		}
		if multi && len(res.Lines) > 0 && len(res.Lines[len(res.Lines)-1]) > 0 {
			b.WriteByte('\n')
		}
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be highlighted", failed, len(results))
	}
	return nil
}
