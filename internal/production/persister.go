// Package production provides adapters for the core service: report
// persistence, event publishing and visualization.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/comalice/rivercrossing/internal/core"
)

// validID restricts report IDs to names safe to use as file names.
var validID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, report core.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn, err := reportFile(p.dir, report.ID, ".json")
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(NewReportDocument(report), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *JSONPersister) Load(ctx context.Context, id string) (core.Report, error) {
	if err := ctx.Err(); err != nil {
		return core.Report{}, err
	}
	data, err := readReport(p.dir, id, ".json")
	if err != nil {
		return core.Report{}, err
	}

	var doc ReportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.Report{}, fmt.Errorf("json unmarshal: %w", err)
	}
	doc.ID = id
	return doc.Report()
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, report core.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn, err := reportFile(p.dir, report.ID, ".yaml")
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(NewReportDocument(report))
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *YAMLPersister) Load(ctx context.Context, id string) (core.Report, error) {
	if err := ctx.Err(); err != nil {
		return core.Report{}, err
	}
	data, err := readReport(p.dir, id, ".yaml")
	if err != nil {
		return core.Report{}, err
	}

	var doc ReportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return core.Report{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	doc.ID = id
	return doc.Report()
}

// NewPersister picks a persister by format name ("json" or "yaml").
func NewPersister(format, dir string) (core.Persister, error) {
	switch format {
	case "json":
		return NewJSONPersister(dir)
	case "yaml", "yml":
		return NewYAMLPersister(dir)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

func reportFile(dir, id, ext string) (string, error) {
	if !validID.MatchString(id) {
		return "", fmt.Errorf("invalid report id %q", id)
	}
	return filepath.Join(dir, id+ext), nil
}

func readReport(dir, id, ext string) ([]byte, error) {
	fn, err := reportFile(dir, id, ext)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", id, core.ErrNotFound)
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("report %q: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}
