package tstring

import "testing"

func TestCutFrontFound(t *testing.T) {
	raw := "a.b.c"
	view := Of(&raw)
	prefix, found := view.CutFront('.')
	if !found {
		t.Fatalf("expected found")
	}
	if prefix.Raw() != "a" {
		t.Errorf("prefix = %q, want %q", prefix.Raw(), "a")
	}
	if view.Raw() != "b.c" {
		t.Errorf("rest = %q, want %q", view.Raw(), "b.c")
	}
}

func TestCutFrontUntouched(t *testing.T) {
	raw := "nodots"
	view := Of(&raw)
	prefix, found := view.CutFront('.')
	if found {
		t.Fatalf("expected not found")
	}
	if prefix.Raw() != "nodots" {
		t.Errorf("prefix = %q, want whole string", prefix.Raw())
	}
	if !view.Empty() {
		t.Errorf("view should be drained, got %q", view.Raw())
	}
}

func TestTrim(t *testing.T) {
	raw := "  hello  "
	view := Of(&raw).Trim()
	if view.Raw() != "hello" {
		t.Errorf("Trim = %q, want %q", view.Raw(), "hello")
	}
}

func TestCutFrontBack(t *testing.T) {
	raw := `"quoted"`
	view := Of(&raw)
	if !view.CutFrontBack(`"`, `"`) {
		t.Fatalf("expected enclosure")
	}
	if view.Raw() != "quoted" {
		t.Errorf("got %q", view.Raw())
	}
}

func TestCutFrontBackNoMatch(t *testing.T) {
	raw := `'quoted"`
	view := Of(&raw)
	if view.CutFrontBack(`"`, `"`) {
		t.Fatalf("expected no enclosure")
	}
}

func TestFindEnclosedNested(t *testing.T) {
	s := "foo ${a ${b} c} bar"
	start, end, ok := FindEnclosed(s, "${", "{", "}")
	if !ok {
		t.Fatalf("expected enclosure")
	}
	if s[start:end] != "${a ${b} c}" {
		t.Errorf("got %q", s[start:end])
	}
}

func TestFindEnclosedNone(t *testing.T) {
	_, _, ok := FindEnclosed("plain text", "${", "{", "}")
	if ok {
		t.Fatalf("expected no enclosure")
	}
}

func TestReplace(t *testing.T) {
	raw := `a\nb`
	view := Of(&raw)
	idx := 1 // position of backslash
	view.Replace(idx, 2, "\n")
	if raw != "a\nb" {
		t.Errorf("got %q", raw)
	}
	if view.Raw() != "a\nb" {
		t.Errorf("view = %q", view.Raw())
	}
}

func TestInterval(t *testing.T) {
	raw := "0123456789"
	view := Of(&raw)
	sub := view.Interval(2, 5)
	if sub.Raw() != "234" {
		t.Errorf("got %q", sub.Raw())
	}
}
