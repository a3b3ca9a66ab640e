package events

import "testing"

func TestCatalog(t *testing.T) {
	types := Types()
	if len(types) == 0 {
		t.Fatal("catalog is empty")
	}

	for _, e := range types {
		if !IsKnown(e.ID) {
			t.Errorf("catalog entry %q not reported as known", e.ID)
		}
		if e.Label == "" {
			t.Errorf("catalog entry %q has no label", e.ID)
		}
	}

	if IsKnown("not_a_real_event") {
		t.Error("unknown event reported as known")
	}
	if IsKnown("") {
		t.Error("empty event reported as known")
	}
}
