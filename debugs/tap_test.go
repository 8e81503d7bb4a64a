package debugs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeopt/logs"
)

func tapScope(t *testing.T, script string, out *bytes.Buffer) dscope.Scope {
	path := filepath.Join(t.TempDir(), "tap.star")
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	return dscope.New(
		new(Module),
	).Fork(
		func() TapScript {
			return TapScript(path)
		},
		func() TapOutput {
			return out
		},
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	)
}

func TestTapScript(t *testing.T) {
	out := new(bytes.Buffer)
	tapScope(t, `
total = 0
for c in cells.elems():
    total += c
print(foo, total, double(21))
`, out).Call(func(
		tap Tap,
	) {
		if err := tap(t.Context(), "test", map[string]any{
			"foo":   42,
			"cells": []byte{1, 2, 3},
			"double": func(i int) int {
				return i * 2
			},
		}); err != nil {
			t.Fatal(err)
		}
	})
	if got := strings.TrimSpace(out.String()); got != "42 6 42" {
		t.Fatalf("got %q", got)
	}
}

func TestTapScriptError(t *testing.T) {
	tapScope(t, `fail("bad tape")`, new(bytes.Buffer)).Call(func(
		tap Tap,
	) {
		err := tap(t.Context(), "test", nil)
		if err == nil || !strings.Contains(err.Error(), "bad tape") {
			t.Fatalf("got %v", err)
		}
	})
}
