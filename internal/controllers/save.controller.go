package controllers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vmhealth/internal/models"
	"vmhealth/internal/renderers"
)

// SaveOptions controls the optional save step that runs after the report is printed
type SaveOptions struct {
	// Ask prompts on In before saving; otherwise the report is saved directly
	Ask bool
	In  io.Reader
	Out io.Writer
	Dir string
	Now time.Time
}

// ReportFilename returns health_check_YYYYMMDD_HHMMSS.txt for t
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("health_check_%s.txt", t.Format("20060102_150405"))
}

// SaveReport writes a plain-text copy of the report. It returns the written
// path, or "" when the user declined.
func SaveReport(ctx context.Context, report *models.SystemHealthReport, opts SaveOptions) (string, error) {
	if opts.Ask {
		fmt.Fprint(opts.Out, "\nWould you like to save this report? (y/n): ")
		answer, err := readAnswer(ctx, opts.In)
		if err != nil {
			return "", err
		}
		if answer != "y" && answer != "yes" {
			return "", nil
		}
	}

	path := filepath.Join(opts.Dir, ReportFilename(opts.Now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}

	text := &renderers.TextRenderer{Color: false}
	if err := text.Render(f, report); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	fmt.Fprintf(opts.Out, "Report saved as: %s\n", path)
	return path, nil
}

// readAnswer reads one line from in, giving up when ctx is cancelled
func readAnswer(ctx context.Context, in io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		ch <- result{line: strings.ToLower(strings.TrimSpace(line)), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err == io.EOF {
			// closed stdin counts as "no"
			return "", nil
		}
		return r.line, r.err
	}
}
