package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestRecordAndListXruns(t *testing.T) {
	h := openTest(t)

	base := time.Now()
	for i := 0; i < 3; i++ {
		err := h.RecordXrun(base.Add(time.Duration(i)*time.Second), 2*time.Millisecond, time.Millisecond, 64)
		if err != nil {
			t.Fatalf("record xrun: %v", err)
		}
	}

	xruns, err := h.RecentXruns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(xruns) != 2 {
		t.Fatalf("expected 2 xruns, got %d", len(xruns))
	}
	if !xruns[0].At.After(xruns[1].At) {
		t.Fatal("xruns must come back newest first")
	}
	if xruns[0].Budget != time.Millisecond || xruns[0].Frames != 64 {
		t.Fatalf("fields lost: %+v", xruns[0])
	}
}

func TestReclaimTotals(t *testing.T) {
	h := openTest(t)

	_ = h.RecordReclaim(time.Now(), 10, 4, 6)
	_ = h.RecordReclaim(time.Now(), 6, 6, 0)

	scanned, freed, err := h.ReclaimTotals()
	if err != nil {
		t.Fatal(err)
	}
	if scanned != 16 || freed != 10 {
		t.Fatalf("expected totals 16/10, got %d/%d", scanned, freed)
	}
}

func TestEmptyTotals(t *testing.T) {
	h := openTest(t)
	scanned, freed, err := h.ReclaimTotals()
	if err != nil {
		t.Fatal(err)
	}
	if scanned != 0 || freed != 0 {
		t.Fatalf("expected zero totals, got %d/%d", scanned, freed)
	}
}
