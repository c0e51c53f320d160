// Package chronology orders date-bearing resume entries newest-first.
package chronology

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Present is the literal end-date value for ongoing roles
const Present = "Present"

// presentKey sorts ongoing roles ahead of any concrete year-month
const presentKey = 9999*12 + 12

// SortAntiChronological returns a new ordering of entries, newest first.
// The sort key is the entry's end date, falling back to the start date
// when the end date is absent. Entries with a resolvable key sort by key
// descending; an entry with a key always sorts before one without; two
// keyless entries preserve their original relative order. Malformed date
// strings resolve to "no key" rather than erroring.
func SortAntiChronological(entries []types.ExperienceEntry) []types.ExperienceEntry {
	type keyed struct {
		entry types.ExperienceEntry
		key   int
	}

	ks := make([]keyed, len(entries))
	for i, e := range entries {
		ks[i] = keyed{entry: e, key: entryKey(e)}
	}

	// Stable sort keeps the source order of keyless ties.
	sort.SliceStable(ks, func(a, b int) bool {
		ka, kb := ks[a].key, ks[b].key
		if (ka < 0) != (kb < 0) {
			return ka >= 0
		}
		return ka > kb
	})

	out := make([]types.ExperienceEntry, len(ks))
	for i, k := range ks {
		out[i] = k.entry
	}
	return out
}

// entryKey resolves an entry to a total-months integer, or -1 when no
// usable date is present.
func entryKey(e types.ExperienceEntry) int {
	if k, ok := dateKey(e.EndDate); ok {
		return k
	}
	if k, ok := dateKey(e.StartDate); ok {
		return k
	}
	return -1
}

// dateKey converts "YYYY-MM" or "Present" to total months
func dateKey(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.EqualFold(s, Present) {
		return presentKey, true
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return year*12 + month, true
}
