package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const templateManifest = `{
  "name": "template",
  "version": "0.1.0",
  "description": "template description",
  "scripts": {"build": "tsc"},
  "dependencies": {"lodash": "^4.17.21"}
}`

func TestParsePreservesKeyOrder(t *testing.T) {
	d, err := Parse([]byte(templateManifest))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []string{"name", "version", "description", "scripts", "dependencies"}
	if got := d.keyOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParseRejectsNonObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `["a"]`},
		{"string", `"name"`},
		{"truncated", `{"name": "x"`},
		{"trailing data", `{"name": "x"} {}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestMergeCustomizedFieldsWin(t *testing.T) {
	d, err := Parse([]byte(templateManifest))
	if err != nil {
		t.Fatal(err)
	}

	err = d.Merge(
		Field{Key: "name", Value: "@pardjs/widget"},
		Field{Key: "description", Value: "A widget"},
		Field{Key: "author", Value: "Jane <jane@example.com>"},
	)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	if got, _ := d.GetString("name"); got != "@pardjs/widget" {
		t.Errorf("name = %q, want %q", got, "@pardjs/widget")
	}
	if got, _ := d.GetString("description"); got != "A widget" {
		t.Errorf("description = %q, want %q", got, "A widget")
	}
	if got, _ := d.GetString("version"); got != "0.1.0" {
		t.Errorf("version = %q, want untouched %q", got, "0.1.0")
	}
	if _, ok := d.Get("dependencies"); !ok {
		t.Error("dependencies should survive the merge")
	}

	// Existing keys keep their slot; new keys are appended.
	want := []string{"name", "version", "description", "scripts", "dependencies", "author"}
	if got := d.keyOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestBytesIsIndentedAndUnescaped(t *testing.T) {
	d, err := Parse([]byte(`{"name":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Set("author", "Jane <jane@example.com>"); err != nil {
		t.Fatal(err)
	}

	out, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}

	want := "{\n  \"name\": \"x\",\n  \"author\": \"Jane <jane@example.com>\"\n}\n"
	if string(out) != want {
		t.Errorf("Bytes() =\n%s\nwant\n%s", out, want)
	}
}

func TestPatchRewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(templateManifest), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Patch(dir,
		Field{Key: "name", Value: "widget"},
		Field{Key: "repository", Value: map[string]string{"type": "git", "url": "https://github.com/pardjs/widget.git"}},
	)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid manifest, got issues: %v", result.Issues)
	}

	d, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := d.GetString("name"); got != "widget" {
		t.Errorf("name = %q, want %q", got, "widget")
	}
	raw, ok := d.Get("repository")
	if !ok || !strings.Contains(string(raw), "https://github.com/pardjs/widget.git") {
		t.Errorf("repository = %s, want url", raw)
	}
}

func TestPatchMissingManifest(t *testing.T) {
	if _, err := Patch(t.TempDir(), Field{Key: "name", Value: "widget"}); err == nil {
		t.Fatal("expected error for missing package.json, got nil")
	}
}
