package scaffold

import (
	"testing"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		name, org, want string
	}{
		{"widget", "", "widget"},
		{"widget", "pardjs", "@pardjs/widget"},
		{"widget", "@pardjs", "@pardjs/widget"},
		{"widget", "  ", "widget"},
	}

	for _, tt := range tests {
		if got := PackageName(tt.name, tt.org); got != tt.want {
			t.Errorf("PackageName(%q, %q) = %q, want %q", tt.name, tt.org, got, tt.want)
		}
	}
}

func TestRepositoryURL(t *testing.T) {
	got := RepositoryURL("https://github.com/{organization}/{name}.git", "widget", "@pardjs")
	if got != "https://github.com/pardjs/widget.git" {
		t.Errorf("RepositoryURL() = %q", got)
	}
	if got := RepositoryURL("", "widget", "pardjs"); got != "" {
		t.Errorf("RepositoryURL(empty pattern) = %q, want empty", got)
	}
}

func TestNewCustomizedInfo(t *testing.T) {
	t.Run("remote template variant", func(t *testing.T) {
		ci := NewCustomizedInfo("widget", PackageInfo{Description: "d", Author: "a"}, "pardjs", "git@github.com:{organization}/{name}.git")
		if ci.Name != "@pardjs/widget" {
			t.Errorf("Name = %q", ci.Name)
		}
		if ci.Repository == nil || ci.Repository.Type != "git" || ci.Repository.URL != "git@github.com:pardjs/widget.git" {
			t.Errorf("Repository = %+v", ci.Repository)
		}
	})

	t.Run("local-only variant", func(t *testing.T) {
		ci := NewCustomizedInfo("widget", PackageInfo{Description: "d"}, "", "")
		if ci.Name != "widget" {
			t.Errorf("Name = %q", ci.Name)
		}
		if ci.Repository != nil {
			t.Errorf("Repository = %+v, want nil", ci.Repository)
		}
		if ci.RepositoryURL() != "" {
			t.Errorf("RepositoryURL() = %q, want empty", ci.RepositoryURL())
		}
	})
}

func TestCustomizedInfoFields(t *testing.T) {
	ci := NewCustomizedInfo("widget", PackageInfo{Description: "d", Author: "a"}, "pardjs", "https://x/{name}")

	fields := ci.Fields()
	var keys []string
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	want := []string{"name", "description", "author", "repository"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
