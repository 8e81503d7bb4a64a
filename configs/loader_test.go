package configs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func testFiles(names ...string) (ret []string) {
	for _, name := range names {
		ret = append(ret, filepath.Join("testdata", name))
	}
	return
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(testFiles("test.cue"), testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	var n int
	err = loader.AssignFirst("str", &n)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader(testFiles("test.cue", "test2.cue"), testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str, err := range All[string](loader, "str") {
		if err != nil {
			t.Fatal(err)
		}
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	// list is only in the first file
	n := 0
	for range All[[]int](loader, "list") {
		n++
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader(testFiles("bad.cue"), testSchema)
	var str string
	err := loader.AssignFirst("str", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "bad.cue") {
		t.Fatalf("got %v", err)
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestMalformedFile(t *testing.T) {
	loader := NewLoader(testFiles("malformed.cue"), testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader(testFiles("missing.cue"), testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if str := First[string](loader, "str"); str != "" {
		t.Fatalf("got %q", str)
	}
	if len(loader.Paths()) != 0 {
		t.Fatal()
	}
}

func TestFirstAndLookup(t *testing.T) {
	loader := NewLoader(testFiles("test2.cue", "test.cue"), testSchema)

	if str := First[string](loader, "str"); str != "foo" {
		t.Fatalf("got %v", str)
	}
	if list := First[[]int](loader, "list"); len(list) != 3 {
		t.Fatalf("got %v", list)
	}

	str, ok, err := Lookup[string](loader, "str")
	if err != nil || !ok || str != "foo" {
		t.Fatalf("got %v %v %v", str, ok, err)
	}
	_, ok, err = Lookup[int](loader, "not")
	if err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}
	_, _, err = Lookup[int](loader, "str")
	if err == nil {
		t.Fatal("should error")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		First[int](loader, "str")
	}()
}
