package mgmterr

import (
	"strings"
	"testing"

	"github.com/danos/ncli/pkg/parsectx"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Kind
	}{
		{"unknown-node: foo", UnknownNode},
		{"list-key-missing: Not enough keys", ListKeyMissing},
		{"leaf-type-mismatch: Expected int8", LeafTypeMismatch},
		{"copy-same-datastore: running", CopySameDatastore},
		{"something nonsensical", InvalidCommand},
	}
	for _, c := range cases {
		rec := &parsectx.ErrorRecord{Message: c.message}
		if got := Classify(rec); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.message, got, c.want)
		}
	}
	if got := Classify(nil); got != "" {
		t.Errorf("Classify(nil) = %v, want empty", got)
	}
}

func TestNewRoundTripsThroughClassify(t *testing.T) {
	rec := New(ListKeyDuplicate, 5, "number")
	if rec.Offset != 5 {
		t.Errorf("Offset = %d, want 5", rec.Offset)
	}
	if got := Classify(rec); got != ListKeyDuplicate {
		t.Errorf("Classify(New(ListKeyDuplicate, ...)) = %v, want ListKeyDuplicate", got)
	}
}

func TestFormatPointsCaretAtOffset(t *testing.T) {
	rec := &parsectx.ErrorRecord{Message: "unknown-node: foo", Offset: 3}
	out := Format("cd foo", rec)
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("Format output has too few lines: %q", out)
	}
	caretLine := lines[1]
	if !strings.HasSuffix(caretLine, "^") {
		t.Errorf("caret line = %q, want it to end in '^'", caretLine)
	}
	if idx := strings.IndexRune(caretLine, '^'); idx != 3+2 { // +2 for the "  " indent
		t.Errorf("caret at column %d, want %d", idx, 3+2)
	}
}

func TestFormatNilReturnsEmpty(t *testing.T) {
	if got := Format("anything", nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
