// Package questdb holds the quest catalog scraped from the wiki's quest
// list, keyed by exact title. It dumps to and loads from plain JSON so
// repeat runs can skip scraping the list page.
package questdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrUnknownQuest is returned when a title isn't in the database.
var ErrUnknownQuest = errors.New("unknown quest")

// Quest is one row of the wiki's quest list. Number is fractional
// because miniquests and subquests slot between full quests.
type Quest struct {
	Difficulty  string  `json:"difficulty"`
	Length      string  `json:"length"`
	Number      float64 `json:"number"`
	QuestPoints int     `json:"quest_points"`
	Series      string  `json:"series"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
}

// DB is an in-memory quest catalog.
type DB struct {
	quests map[string]Quest
}

// New builds a database from scraped quest rows. Later rows win when
// titles collide.
func New(quests []Quest) *DB {
	byTitle := make(map[string]Quest, len(quests))
	for _, quest := range quests {
		byTitle[quest.Title] = quest
	}
	return &DB{quests: byTitle}
}

// FromFile loads a database dumped by DumpToFile.
func FromFile(path string) (*DB, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var quests []Quest
	err = json.Unmarshal(buff, &quests)
	if err != nil {
		return nil, fmt.Errorf("parse quest database %s: %w", path, err)
	}
	return New(quests), nil
}

// DumpToFile writes the database as indented JSON, quests ordered by
// their list number.
func (db *DB) DumpToFile(path string) error {
	buff, err := json.MarshalIndent(db.Quests(), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buff, '\n'), 0644)
}

// Exists reports whether a title is in the database.
func (db *DB) Exists(title string) bool {
	_, ok := db.quests[title]
	return ok
}

// Get looks a quest up by its exact title.
func (db *DB) Get(title string) (Quest, error) {
	quest, ok := db.quests[title]
	if !ok {
		return Quest{}, fmt.Errorf("%w: %q", ErrUnknownQuest, title)
	}
	return quest, nil
}

// Quests returns every quest ordered by list number, titles breaking
// ties.
func (db *DB) Quests() []Quest {
	quests := make([]Quest, 0, len(db.quests))
	for _, quest := range db.quests {
		quests = append(quests, quest)
	}
	sort.Slice(quests, func(i, j int) bool {
		if quests[i].Number != quests[j].Number {
			return quests[i].Number < quests[j].Number
		}
		return quests[i].Title < quests[j].Title
	})
	return quests
}

// Len returns how many quests the database holds.
func (db *DB) Len() int {
	return len(db.quests)
}
