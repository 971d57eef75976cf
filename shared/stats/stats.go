// Package stats keeps the per-variant run statistics shown in the menu.
package stats

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/dasher/shared/dashconfig"
)

// ItemKey is the storage item the statistics are saved under.
const ItemKey = "stats"

// Store is the key/value persistence the statistics are saved to.
// *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Entry is the record of one variant.
type Entry struct {
	Attempts   int     `json:"attempts"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Streak     int     `json:"streak"`
	BestStreak int     `json:"bestStreak"`
	BestTime   float32 `json:"bestTime"` // fastest win in seconds, 0 if none
	Jumps      int     `json:"jumps"`
}

// Summary formats the entry for a one-line menu label.
func (e Entry) Summary() string {
	if e.Attempts == 0 {
		return "no runs yet"
	}
	s := fmt.Sprintf("%d runs  %d won  %d lost  streak %d (best %d)",
		e.Attempts, e.Wins, e.Losses, e.Streak, e.BestStreak)
	if e.BestTime > 0 {
		s += fmt.Sprintf("  best %.1fs", e.BestTime)
	}
	return s
}

// Book holds the entries of every variant.
type Book struct {
	Variants map[dashconfig.VariantID]*Entry `json:"variants"`
}

func NewBook() *Book {
	return &Book{Variants: map[dashconfig.VariantID]*Entry{}}
}

// Get returns a copy of the variant's entry.
func (b *Book) Get(id dashconfig.VariantID) Entry {
	if e, ok := b.Variants[id]; ok {
		return *e
	}
	return Entry{}
}

// Record adds one finished run to the variant's entry.
func (b *Book) Record(id dashconfig.VariantID, won bool, elapsed float32, jumps int) Entry {
	if b.Variants == nil {
		b.Variants = map[dashconfig.VariantID]*Entry{}
	}
	e, ok := b.Variants[id]
	if !ok {
		e = &Entry{}
		b.Variants[id] = e
	}

	e.Attempts++
	e.Jumps += jumps
	if won {
		e.Wins++
		e.Streak++
		if e.Streak > e.BestStreak {
			e.BestStreak = e.Streak
		}
		if e.BestTime == 0 || elapsed < e.BestTime {
			e.BestTime = elapsed
		}
	} else {
		e.Losses++
		e.Streak = 0
	}
	return *e
}

// Run guards a single run against being recorded twice.
type Run struct {
	Variant  dashconfig.VariantID
	recorded bool
}

// Record writes the run to b the first time it is called and reports
// whether it did.
func (r *Run) Record(b *Book, won bool, elapsed float32, jumps int) bool {
	if r.recorded {
		return false
	}
	r.recorded = true
	b.Record(r.Variant, won, elapsed, jumps)
	return true
}

// Recorded reports whether the run has been written.
func (r *Run) Recorded() bool {
	return r.recorded
}

// Load reads the book from s. A store with no saved item yields an empty
// book.
func Load(s Store) (*Book, error) {
	data, err := s.LoadItem(ItemKey)
	if err != nil {
		return NewBook(), fmt.Errorf("load stats: %w", err)
	}
	if data == nil {
		return NewBook(), nil
	}

	b := NewBook()
	if err := json.Unmarshal(data, b); err != nil {
		return NewBook(), fmt.Errorf("parse stats: %w", err)
	}
	if b.Variants == nil {
		b.Variants = map[dashconfig.VariantID]*Entry{}
	}
	return b, nil
}

// Save writes the book to s.
func Save(s Store, b *Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("serialize stats: %w", err)
	}
	if err := s.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
