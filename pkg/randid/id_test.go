package randid

import (
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	id := Generate(8)
	if len(id) != 8 {
		t.Errorf("len = %d, want 8", len(id))
	}

	for _, r := range id {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", r) {
			t.Errorf("unexpected character %q in id %q", r, id)
		}
	}
}

func TestTimeOrdered(t *testing.T) {
	earlier := TimeOrdered(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := TimeOrdered(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	if earlier >= later {
		t.Errorf("ids should sort by creation time: %q >= %q", earlier, later)
	}
	if !strings.Contains(earlier, "-") {
		t.Errorf("id %q missing separator", earlier)
	}
}
