package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestJournal(t *testing.T) {
	Open(Config{File: filepath.Join(t.TempDir(), "surd.db")})
	defer func() {
		if err := Close(); err != nil {
			t.Fatal(err)
		}
	}()

	recs := []Record{
		{F1: "9.87", F2: 803, Time: time.Now().UTC()},
		{F1: "0", F2: 100, Time: time.Now().UTC()},
	}
	for _, rec := range recs {
		if err := Add(rec); err != nil {
			t.Fatal(err)
		}
	}

	var keys []string
	var got []Record
	for id, rec := range All() {
		keys = append(keys, id)
		got = append(got, rec)
	}

	if have, want := len(got), len(recs); have != want {
		t.Fatalf("record count %d != %d", have, want)
	}
	for i := range recs {
		if got[i].F1 != recs[i].F1 || got[i].F2 != recs[i].F2 || !got[i].Time.Equal(recs[i].Time) {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], recs[i])
		}
	}
	if keys[0] >= keys[1] {
		t.Fatalf("keys not in insertion order: %q >= %q", keys[0], keys[1])
	}
}
