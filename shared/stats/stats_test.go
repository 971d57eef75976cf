package stats

import (
	"errors"
	"testing"

	"github.com/automoto/dasher/shared/dashconfig"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestRecordStreaks(t *testing.T) {
	b := NewBook()
	id := dashconfig.VariantDasher

	results := []struct {
		won        bool
		elapsed    float32
		streak     int
		bestStreak int
	}{
		{true, 12, 1, 1},
		{true, 10, 2, 2},
		{false, 3, 0, 2},
		{true, 11, 1, 2},
	}
	for i, r := range results {
		e := b.Record(id, r.won, r.elapsed, 1)
		if e.Streak != r.streak || e.BestStreak != r.bestStreak {
			t.Fatalf("run %d: streak %d best %d, want %d and %d", i, e.Streak, e.BestStreak, r.streak, r.bestStreak)
		}
	}

	e := b.Get(id)
	if e.Attempts != 4 || e.Wins != 3 || e.Losses != 1 {
		t.Errorf("entry = %+v", e)
	}
	if e.BestTime != 10 {
		t.Errorf("BestTime = %v, want 10", e.BestTime)
	}
	if e.Jumps != 4 {
		t.Errorf("Jumps = %d, want 4", e.Jumps)
	}
	if other := b.Get(dashconfig.VariantJump); other.Attempts != 0 {
		t.Errorf("jump entry touched: %+v", other)
	}
}

func TestLossKeepsBestTime(t *testing.T) {
	b := NewBook()
	b.Record(dashconfig.VariantDodge, false, 2, 0)
	if e := b.Get(dashconfig.VariantDodge); e.BestTime != 0 {
		t.Errorf("BestTime = %v after a loss, want 0", e.BestTime)
	}
}

func TestRunRecordsOnce(t *testing.T) {
	b := NewBook()
	r := Run{Variant: dashconfig.VariantDodge}

	if !r.Record(b, false, 5, 2) {
		t.Fatal("first Record() = false")
	}
	for i := 0; i < 3; i++ {
		if r.Record(b, true, 5, 2) {
			t.Fatal("second Record() = true")
		}
	}
	if !r.Recorded() {
		t.Error("Recorded() = false")
	}
	if e := b.Get(dashconfig.VariantDodge); e.Attempts != 1 || e.Losses != 1 {
		t.Errorf("entry = %+v, want one loss", e)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newMemStore()
	b := NewBook()
	b.Record(dashconfig.VariantDasher, true, 9.5, 6)

	if err := Save(s, b); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(s)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if e := got.Get(dashconfig.VariantDasher); e.Wins != 1 || e.BestTime != 9.5 || e.Jumps != 6 {
		t.Errorf("loaded entry = %+v", e)
	}
}

func TestLoadEmpty(t *testing.T) {
	b, err := Load(newMemStore())
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(b.Variants) != 0 {
		t.Errorf("Variants = %v, want empty", b.Variants)
	}
	b.Record(dashconfig.VariantJump, true, 1, 1)
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	s := newMemStore()
	s.loadErr = boom
	b, err := Load(s)
	if !errors.Is(err, boom) {
		t.Fatalf("Load() = %v, want wrapped %v", err, boom)
	}
	if b == nil || b.Variants == nil {
		t.Fatal("Load() should still return a usable book")
	}

	s = newMemStore()
	s.items[ItemKey] = []byte("{not json")
	if _, err := Load(s); err == nil {
		t.Fatal("Load() of garbage = nil error")
	}
}

func TestSaveError(t *testing.T) {
	boom := errors.New("read-only")
	s := newMemStore()
	s.saveErr = boom
	if err := Save(s, NewBook()); !errors.Is(err, boom) {
		t.Fatalf("Save() = %v, want wrapped %v", err, boom)
	}
}

func TestSummary(t *testing.T) {
	if got := (Entry{}).Summary(); got != "no runs yet" {
		t.Errorf("empty Summary() = %q", got)
	}
	e := Entry{Attempts: 3, Wins: 2, Losses: 1, Streak: 1, BestStreak: 2, BestTime: 10.5}
	want := "3 runs  2 won  1 lost  streak 1 (best 2)  best 10.5s"
	if got := e.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
