package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"ERROR", LevelError, true},
		{"none", LevelNone, true},
		{"loud", LevelNone, false},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.name)
		if (err == nil) != c.ok {
			t.Fatalf("ParseLevel(%q) err = %v, want ok=%v", c.name, err, c.ok)
		}
		if c.ok && got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseArea(t *testing.T) {
	if _, err := ParseArea("nonsense"); err == nil {
		t.Errorf("ParseArea(nonsense) succeeded unexpectedly")
	}
	a, err := ParseArea("Complete")
	if err != nil || a != AreaComplete {
		t.Errorf("ParseArea(Complete) = %v, %v, want AreaComplete, nil", a, err)
	}
}

func TestSetAndEnabled(t *testing.T) {
	defer Set("parse", "none") // restore the package-global default for other tests

	if Enabled(LevelDebug, AreaParse) {
		t.Fatalf("AreaParse debug logging enabled before Set")
	}
	if _, err := Set("parse", "debug"); err != nil {
		t.Fatalf("Set(parse, debug) failed: %v", err)
	}
	if !Enabled(LevelDebug, AreaParse) {
		t.Errorf("AreaParse debug logging not enabled after Set")
	}
	if Enabled(LevelDebug, AreaComplete) {
		t.Errorf("Set(parse, ...) leaked into AreaComplete")
	}
}

func TestSetRejectsUnknownArea(t *testing.T) {
	if _, err := Set("nonsense", "debug"); err == nil {
		t.Errorf("Set(nonsense, debug) succeeded unexpectedly")
	}
}

func TestStatusListsAllAreas(t *testing.T) {
	s := Status()
	for _, want := range []string{"parse", "complete", "schema"} {
		if !strings.Contains(s, want) {
			t.Errorf("Status() = %q, missing area %q", s, want)
		}
	}
}
