// Package readme renders the generated project's README.md from the
// customized project metadata.
package readme

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/README.md.tmpl
var templateFS embed.FS

const (
	// FileName is the rendered output inside the project.
	FileName = "README.md"
	// TemplateFileName is an optional template shipped by the project template.
	// When present it takes precedence over the built-in one and is removed
	// after rendering.
	TemplateFileName = "README.md.tmpl"
)

// Data holds the values available to README templates.
type Data struct {
	Name           string
	Description    string
	Author         string
	RepositoryURL  string
	PackageManager string
	Year           int
}

// Render executes the README template with data.
func Render(tmplText string, data Data) ([]byte, error) {
	tmpl, err := template.New(FileName).Funcs(sprig.TxtFuncMap()).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("parsing README template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing README template: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders README.md into dir. A README.md.tmpl in dir is used in place
// of the built-in template.
func Write(dir string, data Data) error {
	custom := filepath.Join(dir, TemplateFileName)

	tmplBytes, err := os.ReadFile(custom)
	usingCustom := err == nil
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", custom, err)
		}
		tmplBytes, err = templateFS.ReadFile("templates/" + TemplateFileName)
		if err != nil {
			return fmt.Errorf("reading built-in README template: %w", err)
		}
	}

	out, err := Render(string(tmplBytes), data)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Debug("wrote README", "path", path, "custom_template", usingCustom)

	if usingCustom {
		if err := os.Remove(custom); err != nil {
			return fmt.Errorf("removing %s: %w", custom, err)
		}
	}
	return nil
}
