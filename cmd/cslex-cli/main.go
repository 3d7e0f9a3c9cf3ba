package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"cslex/internal/errors"
	"cslex/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cslex <file.cs | directory>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	files, err := collectFiles(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no .cs files found under %s\n", path)
		os.Exit(1)
	}

	failed := false
	totalTokens := 0
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
			os.Exit(1)
		}

		tokens, lexErr := lexer.New(string(source)).Lex()
		if lexErr != nil {
			failed = true
			if scanErr, ok := lexErr.(*lexer.ScanError); ok {
				reporter := errors.NewReporter(file, string(source))
				fmt.Print(reporter.Format(scanErr))
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, lexErr)
			}
			continue
		}

		totalTokens += len(tokens)
		fmt.Printf("%s: %d tokens\n", file, len(tokens))
	}

	duration := formatDuration(time.Since(startTime))
	if failed {
		color.Red("Lexing failed after %s", duration)
		os.Exit(1)
	}
	color.Green("Successfully lexed %d file(s), %d tokens in %s", len(files), totalTokens, duration)
}

// collectFiles resolves the argument to the list of .cs files to lex.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".cs") {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
