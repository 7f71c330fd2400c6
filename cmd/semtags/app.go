package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semtags/config"
	"github.com/c360studio/semtags/export"
	"github.com/c360studio/semtags/generator"
	"github.com/c360studio/semtags/mapping"
	"github.com/c360studio/semtags/tags"
)

// App holds the resolved configuration and the collaborators every command
// works against.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *generator.Registry
	tables   *mapping.Tables
}

// NewApp creates an App from a validated configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry, err := generator.NewRegistryFromNames(cfg.Generators, logger)
	if err != nil {
		return nil, fmt.Errorf("register generators: %w", err)
	}

	tables, err := mapping.NewLoader(logger).Load(cfg.Mapping.Files, cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("load alias tables: %w", err)
	}

	logger.Debug("App ready",
		slog.Int("generators", registry.Len()),
		slog.Int("alias_files", len(cfg.Mapping.Files)))

	return &App{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		tables:   tables,
	}, nil
}

// ParseTags resolves command-line tokens into a tag set. Tokens may be
// comma-separated. Each token is resolved as a tag name, a "-" negation or a
// registered generator name; tokens that name no tag are looked up as room
// and then object aliases.
func (a *App) ParseTags(tokens []string) (tags.Set, error) {
	out := make(tags.Set)
	for _, token := range splitTokens(tokens) {
		t, err := a.parseTag(token)
		if err != nil {
			return nil, err
		}
		out.Add(t)
	}
	return out, nil
}

func (a *App) parseTag(token string) (tags.Tag, error) {
	t, err := tags.ToTag(token, a.registry)
	if err == nil || !errors.Is(err, tags.ErrUnresolvedTagName) {
		return t, err
	}

	phrase, negated := strings.CutPrefix(token, "-")
	s, ok := a.tables.MapRoom(phrase)
	if !ok {
		s, ok = a.tables.MapObject(phrase)
	}
	if !ok {
		return nil, err
	}

	a.logger.Debug("Resolved alias", slog.String("input", phrase), slog.String("tag", s.GoString()))
	if negated {
		return tags.Negate(s), nil
	}
	return s, nil
}

func splitTokens(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		for _, part := range strings.Split(token, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Implies reports whether lhs implies rhs.
func (a *App) Implies(lhs, rhs tags.Set) bool {
	return tags.Implies(lhs, rhs)
}

// Satisfies reports whether lhs satisfies rhs.
func (a *App) Satisfies(lhs, rhs tags.Set) bool {
	return tags.Satisfies(lhs, rhs)
}

// Export renders one node's tags using the configured format, profile and
// base IRI. A non-empty format overrides the configured one.
func (a *App) Export(nodeID string, set tags.Set, format string) (string, error) {
	f := a.cfg.ExportFormat()
	if format != "" {
		var err error
		if f, err = export.ParseFormat(format); err != nil {
			return "", err
		}
	}

	exporter := export.NewExporter(export.Profile(a.cfg.Export.Profile), a.cfg.Export.BaseIRI)
	exporter.AddNode(export.Node{ID: nodeID, Tags: set})
	return exporter.Export(f)
}
