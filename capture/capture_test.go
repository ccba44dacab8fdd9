package capture

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	in := &Capture{
		TakenAt: time.Now().UTC().Truncate(time.Millisecond),
		LastSeq: 17,
		Blocks: []BlockView{
			{Seq: 16, Holders: 2, Frames: 64, AgeMS: 120},
			{Seq: 17, Holders: 3, Frames: 64, AgeMS: 10},
		},
		Counters: map[string]uint64{"published": 17, "reclaimed": 15},
	}
	if err := Write(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.LastSeq != 17 || len(out.Blocks) != 2 {
		t.Fatalf("round trip lost data: %+v", out)
	}
	if out.Blocks[1].Holders != 3 || out.Counters["reclaimed"] != 15 {
		t.Fatalf("fields lost: %+v", out)
	}
}

func TestWriteReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	if err := Write(path, &Capture{LastSeq: 1}); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, &Capture{LastSeq: 2}); err != nil {
		t.Fatal(err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.LastSeq != 2 {
		t.Fatalf("expected the newer capture, got seq %d", out.LastSeq)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.cbor")); err == nil {
		t.Fatal("expected an error for a missing capture")
	}
}
