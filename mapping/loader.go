package mapping

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Loader builds alias tables from the embedded defaults plus alias files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new alias table loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load returns the default tables overlaid with every file matched by
// patterns. Relative patterns are resolved against baseDir. Files are merged
// in pattern order, then lexical order within a pattern, so later files win.
// A pattern that matches nothing is not an error.
func (l *Loader) Load(patterns []string, baseDir string) (*Tables, error) {
	tables := Default().clone()

	files, err := l.resolve(patterns, baseDir)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		if err := l.loadFile(tables, path); err != nil {
			return nil, err
		}
	}

	rooms, objects, locs, stages := tables.Aliases()
	l.logger.Debug("Alias tables ready",
		slog.Int("files", len(files)),
		slog.Int("rooms", rooms),
		slog.Int("objects", objects),
		slog.Int("locations", locs),
		slog.Int("stage_types", stages))

	return tables, nil
}

func (l *Loader) resolve(patterns []string, baseDir string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) && baseDir != "" {
			pattern = filepath.Join(baseDir, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			l.logger.Warn("Alias pattern matched no files", slog.String("pattern", pattern))
			continue
		}

		slices.Sort(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func (l *Loader) loadFile(tables *Tables, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read alias file: %w", err)
	}

	f, err := parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tables.merge(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("Loaded alias file", slog.String("path", path))
	return nil
}
