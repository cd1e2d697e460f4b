package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/rvrdev/portfolio/internal/logging"
)

// Exporter writes the rendered site and its static assets to a directory
// that any static file server can host.
type Exporter struct {
	Renderer  *Renderer
	OutputDir string
	// Static is the asset tree; Assets selects files from it with
	// doublestar patterns.
	Static fs.FS
	Assets []string
}

// Result lists what an export wrote, relative to the output directory.
type Result struct {
	Pages  []string
	Assets []string
}

// Export renders index.html and 404.html and copies the selected assets
// under static/. Existing files are overwritten, others are left alone.
func (e *Exporter) Export() (*Result, error) {
	log := logging.For("export")
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{}
	pages := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"index.html", e.Renderer.Page},
		{"404.html", e.Renderer.NotFound},
	}
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.render(&buf); err != nil {
			return nil, err
		}
		if err := writeFile(filepath.Join(e.OutputDir, p.name), buf.Bytes()); err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, p.name)
	}

	assets, err := e.selectAssets()
	if err != nil {
		return nil, err
	}
	for _, name := range assets {
		data, err := fs.ReadFile(e.Static, name)
		if err != nil {
			return nil, fmt.Errorf("reading asset %s: %w", name, err)
		}
		rel := filepath.Join("static", filepath.FromSlash(name))
		if err := writeFile(filepath.Join(e.OutputDir, rel), data); err != nil {
			return nil, err
		}
		res.Assets = append(res.Assets, filepath.ToSlash(rel))
		log.WithField("asset", name).Debug("copied")
	}

	log.WithFields(logrus.Fields{
		"dir":    e.OutputDir,
		"pages":  len(res.Pages),
		"assets": len(res.Assets),
	}).Info("site exported")
	return res, nil
}

func (e *Exporter) selectAssets() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range e.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(e.Static, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching assets %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
