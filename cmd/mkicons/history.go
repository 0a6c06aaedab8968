package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Mavwarf/mkicons/internal/history"
)

const defaultHistoryCount = 10

// --- ANSI color helpers (disabled by NO_COLOR or a non-terminal stdout) ---

var noColor = !term.IsTerminal(int(os.Stdout.Fd()))

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string  { return ansi("\033[1m", s) }
func dim(s string) string   { return ansi("\033[2m", s) }
func green(s string) string { return ansi("\033[32m", s) }

func historyCmd(args []string, dbPath string, out io.Writer) error {
	count := defaultHistoryCount
	if len(args) > 0 {
		if args[0] == "clear" {
			return historyClear(dbPath, out)
		}
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}
		count = n
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(out, `No history recorded. Set "log": true in mkicons-config.json to enable it.`)
		return nil
	}

	s, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer s.Close()

	runs, err := s.Runs(count)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	renderRuns(out, runs)
	return nil
}

func historyClear(dbPath string, out io.Writer) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "Nothing to clear.")
		return nil
	}
	s, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer s.Close()
	if err := s.Clear(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	fmt.Fprintf(out, "History cleared (%s).\n", s.Path())
	return nil
}

// renderRuns prints one block per run: a header line and an aligned row per
// written icon.
func renderRuns(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	nameWidth := 0
	for _, r := range runs {
		for _, a := range r.Assets {
			nameWidth = max(nameWidth, runewidth.StringWidth(a.Name))
		}
	}

	for i, r := range runs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s\n", bold(r.Time.Local().Format("2006-01-02 15:04:05")), dim(r.Dir))
		for _, a := range r.Assets {
			dims := fmt.Sprintf("%dx%d", a.Size, a.Size)
			fmt.Fprintf(w, "  %s  %-3s  %7s  %8s  %s\n",
				runewidth.FillRight(a.Name, nameWidth),
				a.Format,
				dims,
				formatBytes(a.Bytes),
				green(shortHash(a.SHA256)))
		}
	}
}

// formatBytes returns a compact size string (e.g. "812 B", "4.1 KB").
func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

func shortHash(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
