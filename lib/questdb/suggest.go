package questdb

import (
	"questgraph/lib/textutil"
	"sort"

	"github.com/antzucaro/matchr"
)

// Suggest returns up to n quest titles ranked by Jaro-Winkler
// similarity to the query. It backs the "did you mean" hint printed
// when a lookup fails.
func (db *DB) Suggest(query string, n int) []string {
	normalized := textutil.NormalizeName(query)

	type scored struct {
		title      string
		similarity float64
	}
	ranked := make([]scored, 0, len(db.quests))
	for title := range db.quests {
		ranked = append(ranked, scored{
			title:      title,
			similarity: matchr.JaroWinkler(normalized, textutil.NormalizeName(title), false),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].similarity != ranked[j].similarity {
			return ranked[i].similarity > ranked[j].similarity
		}
		return ranked[i].title < ranked[j].title
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	titles := make([]string, 0, n)
	for _, entry := range ranked[:n] {
		titles = append(titles, entry.title)
	}
	return titles
}
