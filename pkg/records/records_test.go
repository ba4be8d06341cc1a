package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
)

func TestBest(t *testing.T) {
	b := NewBook()
	if _, ok := b.Best(0); ok {
		t.Fatal("empty book has no best lap")
	}
	b.Add(0, 65000, 0)
	b.Add(1, 30000, 0)
	fast := b.Add(0, 61234, 2)
	b.Add(0, 70000, 0)

	best, ok := b.Best(0)
	if !ok || best.ID != fast.ID {
		t.Errorf("best = %+v", best)
	}
	if best.Lap() != "1:01.234" {
		t.Errorf("lap = %q", best.Lap())
	}

	laps := b.Track(0)
	if len(laps) != 3 || laps[0].LapTimeMS != 61234 || laps[2].LapTimeMS != 70000 {
		t.Errorf("track laps = %+v", laps)
	}
}

func TestIDs(t *testing.T) {
	b := NewBook()
	r := b.Add(3, 1000, 0)
	if _, err := ksuid.Parse(r.ID); err != nil {
		t.Errorf("record id %q: %v", r.ID, err)
	}
	if r.Session != b.Session() {
		t.Errorf("session = %q, want %q", r.Session, b.Session())
	}
	if b.Add(3, 1000, 0).ID == r.ID {
		t.Error("ids must be unique")
	}
}

func TestFormatMS(t *testing.T) {
	cases := map[uint32]string{
		0:       "0:00.000",
		999:     "0:00.999",
		61000:   "1:01.000",
		3599999: "59:59.999",
	}
	for ms, want := range cases {
		if got := FormatMS(ms); got != want {
			t.Errorf("FormatMS(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")

	b := NewBook()
	b.Add(2, 45000, 1)
	if err := b.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(loaded.Records) != 1 || loaded.Records[0].LapTimeMS != 45000 || loaded.Records[0].Skin != 1 {
		t.Errorf("records = %+v", loaded.Records)
	}
	if loaded.Session() == b.Session() || loaded.Session() == "" {
		t.Error("a loaded book starts a new session")
	}
}

func TestLoadMissing(t *testing.T) {
	b, err := LoadFromFile(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if len(b.Records) != 0 {
		t.Errorf("records = %+v", b.Records)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("corrupt file should fail")
	}
}
