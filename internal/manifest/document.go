package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

// Field is a single top-level manifest entry.
type Field struct {
	Key   string
	Value any
}

// Document is a JSON object whose top-level key order is preserved.
// Values are kept as raw JSON so untouched entries round-trip unchanged.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// Parse decodes a JSON object into a Document.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}

	d := &Document{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading manifest key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in manifest", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("reading manifest value %q: %w", key, err)
		}
		if _, dup := d.values[key]; !dup {
			d.keys = append(d.keys, key)
		}
		d.values[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after manifest object")
	}

	return d, nil
}

// ReadFile reads and parses a manifest file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}

// keyOrder returns the top-level keys in document order.
func (d *Document) keyOrder() []string {
	return append([]string(nil), d.keys...)
}

// Get returns the raw JSON value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetString decodes a string value. It returns false if the key is missing or
// not a string.
func (d *Document) GetString(key string) (string, bool) {
	raw, ok := d.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (d *Document) Set(key string, value any) error {
	raw, err := marshalValue(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
	return nil
}

// Merge shallow-merges fields on top of the document. Incoming values win.
func (d *Document) Merge(fields ...Field) error {
	for _, f := range fields {
		if err := d.Set(f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the document compactly in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(d.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Bytes returns the document indented with two spaces and a trailing newline.
func (d *Document) Bytes() ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// WriteFile writes the document to path, keeping the file's existing mode.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Patch merges fields into <dir>/package.json, rewrites it, and validates the
// result. Schema issues are reported in the ValidationResult; the error return
// covers read, parse and write failures.
func Patch(dir string, fields ...Field) (*ValidationResult, error) {
	path := filepath.Join(dir, FileName)

	d, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := d.Merge(fields...); err != nil {
		return nil, err
	}
	if err := d.WriteFile(path); err != nil {
		return nil, err
	}

	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// marshalValue encodes v without HTML escaping so author strings such as
// "Jane <jane@example.com>" stay readable.
func marshalValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
