package fixer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cubahno/oasfix/internal/config"
	"github.com/cubahno/oasfix/internal/document"
	"github.com/cubahno/oasfix/internal/files"
	"github.com/cubahno/oasfix/internal/generator"
	"github.com/cubahno/oasfix/internal/validators"
)

// Fixer rewrites spec files according to the config.
type Fixer struct {
	cfg *config.Config
	out io.Writer
}

// NewFixer creates a Fixer.
// Confirmation lines are written to out, one per processed file.
func NewFixer(cfg *config.Config, out io.Writer) *Fixer {
	if out == nil {
		out = os.Stdout
	}
	return &Fixer{cfg: cfg, out: out}
}

// Run processes every configured spec file in order.
// A failing file does not stop the remaining ones, the first error
// is returned after all files were attempted.
func (f *Fixer) Run() error {
	var firstErr error
	for _, path := range f.cfg.Specs {
		if err := f.ProcessFile(path); err != nil {
			slog.Error("error processing file", "file", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// ProcessFile reads a spec file, relocates schema-level examples to the
// content level and writes the result back to the same path.
func (f *Fixer) ProcessFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if !files.IsYamlType(data) {
		return fmt.Errorf("%s: not a valid YAML document", path)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.cfg.Backup {
		backupPath, err := files.BackupFile(path)
		if err != nil {
			return fmt.Errorf("backing up %s: %w", path, err)
		}
		slog.Info("created backup", "file", backupPath)
	}

	document.RelocateExamples(doc)

	if f.cfg.Fill {
		filled := generator.New().FillMissing(doc)
		if filled > 0 {
			slog.Info("filled missing examples", "file", path, "count", filled)
		}
	}

	result, err := document.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	if err := files.SaveFile(path, result); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if f.cfg.Validate {
		// warn-only: response collections are not complete OpenAPI documents
		if err := validators.CheckOpenAPI(result); err != nil {
			slog.Warn("rewritten file does not load as an OpenAPI document", "file", path, "error", err)
		}
	}

	fmt.Fprintf(f.out, "Fixed %s\n", path)
	return nil
}

// DryRun reports relocation candidates for every configured spec file
// without modifying anything.
func (f *Fixer) DryRun() error {
	var firstErr error

	for _, path := range f.cfg.Specs {
		candidates, err := f.scanFile(path)
		if err != nil {
			slog.Error("error scanning file", "file", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		for _, c := range candidates {
			if c.HasDestination {
				fmt.Fprintf(f.out, "%s:%d: schema-level examples would move to content\n", path, c.Line)
				continue
			}
			fmt.Fprintf(f.out, "%s:%d: schema-level examples would be dropped (no destination)\n", path, c.Line)
		}
		fmt.Fprintf(f.out, "%s: %d candidate(s)\n", path, len(candidates))
	}

	return firstErr
}

func (f *Fixer) scanFile(path string) ([]document.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return document.FindRelocatable(doc), nil
}
