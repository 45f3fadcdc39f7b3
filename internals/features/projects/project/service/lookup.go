package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"ftth_backend/internals/features/projects/project/repository"
)

const LookupLimit = 20

// RankLookup: pencarian toleran typo atas no_project dan nama_project.
// Satu project muncul sekali dengan jarak terbaiknya.
func RankLookup(q string, rows []repository.LookupRow, limit int) []repository.LookupRow {
	q = strings.TrimSpace(q)
	if q == "" || len(rows) == 0 {
		return []repository.LookupRow{}
	}
	if limit <= 0 {
		limit = LookupLimit
	}

	// target[i] → rows[i/2]; genap = no_project, ganjil = nama_project
	targets := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		targets = append(targets, r.NoProject, r.NamaProject)
	}

	ranks := fuzzy.RankFindNormalizedFold(q, targets)
	sort.Sort(ranks)

	seen := make(map[int]bool, len(ranks))
	out := make([]repository.LookupRow, 0, limit)
	for _, rk := range ranks {
		idx := rk.OriginalIndex / 2
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, rows[idx])
		if len(out) == limit {
			break
		}
	}
	return out
}
