// Package diff computes structured before/after comparisons of resume
// documents and renders a short narrative of what the adaptation changed.
package diff

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Change kinds
const (
	KindAdded     = "added"
	KindRemoved   = "removed"
	KindRewritten = "rewritten"
)

// Change records one difference between the pre- and post-adaptation
// documents.
type Change struct {
	Section string `json:"section"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind"`
	Before  string `json:"before,omitempty"`
	After   string `json:"after,omitempty"`
}

// Report is the full structured diff plus a human-readable narrative
type Report struct {
	Changes   []Change `json:"changes"`
	Narrative string   `json:"narrative"`
}

// Compare diffs two documents. Entries are matched positionally, the
// same convention the language enforcement engine uses.
func Compare(before, after *types.ResumeDocument) *Report {
	r := &Report{}

	r.compareField("summary", "", before.Summary, after.Summary)

	r.compareExperience(before.Experience, after.Experience)
	r.compareProjects(before.Projects, after.Projects)
	r.compareEducation(before.Education, after.Education)

	r.compareList("skills", "languages", before.Skills.Languages, after.Skills.Languages)
	r.compareList("skills", "frameworks", before.Skills.Frameworks, after.Skills.Frameworks)
	r.compareList("skills", "tools", before.Skills.Tools, after.Skills.Tools)
	r.compareList("skills", "other", before.Skills.Other, after.Skills.Other)

	r.Narrative = r.narrative()
	return r
}

func (r *Report) compareField(section, field, before, after string) {
	switch {
	case before == after:
	case before == "":
		r.Changes = append(r.Changes, Change{Section: section, Field: field, Kind: KindAdded, After: after})
	case after == "":
		r.Changes = append(r.Changes, Change{Section: section, Field: field, Kind: KindRemoved, Before: before})
	default:
		r.Changes = append(r.Changes, Change{Section: section, Field: field, Kind: KindRewritten, Before: before, After: after})
	}
}

func (r *Report) compareExperience(before, after []types.ExperienceEntry) {
	n := min(len(before), len(after))
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("experience[%d]", i)
		r.compareField(prefix, "title", before[i].Title, after[i].Title)
		r.compareField(prefix, "company", before[i].Company, after[i].Company)
		r.compareBullets(prefix, before[i].Bullets, after[i].Bullets)
	}
	r.compareLength("experience", len(before), len(after))
}

func (r *Report) compareProjects(before, after []types.ProjectEntry) {
	n := min(len(before), len(after))
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("projects[%d]", i)
		r.compareField(prefix, "name", before[i].Name, after[i].Name)
		r.compareBullets(prefix, before[i].Bullets, after[i].Bullets)
	}
	r.compareLength("projects", len(before), len(after))
}

func (r *Report) compareEducation(before, after []types.EducationEntry) {
	n := min(len(before), len(after))
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("education[%d]", i)
		r.compareField(prefix, "school", before[i].School, after[i].School)
		r.compareField(prefix, "degree", before[i].Degree, after[i].Degree)
	}
	r.compareLength("education", len(before), len(after))
}

func (r *Report) compareBullets(section string, before, after []string) {
	n := min(len(before), len(after))
	for i := 0; i < n; i++ {
		r.compareField(section, fmt.Sprintf("bullets[%d]", i), before[i], after[i])
	}
	for i := n; i < len(after); i++ {
		r.Changes = append(r.Changes, Change{Section: section, Field: fmt.Sprintf("bullets[%d]", i), Kind: KindAdded, After: after[i]})
	}
	for i := n; i < len(before); i++ {
		r.Changes = append(r.Changes, Change{Section: section, Field: fmt.Sprintf("bullets[%d]", i), Kind: KindRemoved, Before: before[i]})
	}
}

// compareList diffs unordered string lists as sets
func (r *Report) compareList(section, field string, before, after []string) {
	beforeSet := toSet(before)
	afterSet := toSet(after)

	for _, item := range after {
		if _, ok := beforeSet[item]; !ok {
			r.Changes = append(r.Changes, Change{Section: section, Field: field, Kind: KindAdded, After: item})
		}
	}
	for _, item := range before {
		if _, ok := afterSet[item]; !ok {
			r.Changes = append(r.Changes, Change{Section: section, Field: field, Kind: KindRemoved, Before: item})
		}
	}
}

func (r *Report) compareLength(section string, before, after int) {
	for i := before; i < after; i++ {
		r.Changes = append(r.Changes, Change{Section: section, Kind: KindAdded, After: fmt.Sprintf("entry %d", i)})
	}
	for i := after; i < before; i++ {
		r.Changes = append(r.Changes, Change{Section: section, Kind: KindRemoved, Before: fmt.Sprintf("entry %d", i)})
	}
}

// narrative renders per-kind counts into one readable sentence
func (r *Report) narrative() string {
	if len(r.Changes) == 0 {
		return "No changes were made to the resume."
	}

	counts := map[string]int{}
	for _, c := range r.Changes {
		counts[c.Kind]++
	}

	var parts []string
	if n := counts[KindRewritten]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s) rewritten", n))
	}
	if n := counts[KindAdded]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s) added", n))
	}
	if n := counts[KindRemoved]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s) removed", n))
	}
	return "Adaptation changed the resume: " + strings.Join(parts, ", ") + "."
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
