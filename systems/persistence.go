package systems

import (
	"github.com/automoto/dasher/shared/stats"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// AppName is the gdata application the statistics are stored under.
const AppName = "dasher"

var gdataManager *gdata.Manager
var gdataInitialized bool

var statsBook = stats.NewBook()

// InitPersistence initializes the gdata manager and loads the statistics.
// The game keeps running with in-memory statistics when this fails.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true

	book, err := stats.Load(gdataManager)
	if err != nil {
		log.Warn("could not load stats", "err", err)
	}
	statsBook = book
	return nil
}

// Stats returns the statistics of every variant.
func Stats() *stats.Book {
	return statsBook
}

// SaveStats writes the statistics to disk, logging any failure.
func SaveStats() {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	if err := stats.Save(gdataManager, statsBook); err != nil {
		log.Warn("could not save stats", "err", err)
	}
}
