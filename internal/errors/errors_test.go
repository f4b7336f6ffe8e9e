package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := Newf(CategoryParse, "missing closing tag </%s>", "div")
	if got := err.Error(); got != "parse: missing closing tag </div>" {
		t.Errorf("Error() = %q", got)
	}

	err = err.WithLocation("template", 3, 7)
	if got := err.Error(); got != "parse: template:3:7: missing closing tag </div>" {
		t.Errorf("Error() with location = %q", got)
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{Line: 2, Column: 5}
	if got := loc.String(); got != "2:5" {
		t.Errorf("String() = %q", got)
	}
	loc.Source = "o.yaml"
	if got := loc.String(); got != "o.yaml:2:5" {
		t.Errorf("String() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	err := Newf(CategoryConfig, "cannot read o.yaml").Wrap(fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("Is should see through the wrapper")
	}
}

func TestFormat(t *testing.T) {
	err := Newf(CategoryCLI, "unknown app").
		WithLocation("o.yaml", 2, 1).
		WithSuggestion("run o serve --help").
		Wrap(stderrors.New("no such app"))

	out := err.Format()
	for _, want := range []string{
		"ERROR [cli]: unknown app",
		"o.yaml:2:1",
		"Hint: run o serve --help",
		"Caused by: no such app",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}
