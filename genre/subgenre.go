package genre

import "strings"

// A Subgenre is one fine-grained label that survived filtering, inheriting
// the weight of the source that produced it and hanging off the winning
// primary genre.
type Subgenre struct {
	Label      string
	Parent     string
	Confidence float64
	Source     string
}

// A Filter is the deny set for one batch run: the primary set, the static
// deny-list, and whatever genre names the batch's database already knows.
// It is built once per run and passed around explicitly, so batches never
// share mutable state.
type Filter struct {
	deny map[string]struct{}
}

// NewFilter builds a Filter from the primary set, the static deny-list, and
// any extra genre-level names (such as names already assigned in the
// database).
func NewFilter(extra ...string) *Filter {
	deny := make(map[string]struct{})
	for _, name := range Primaries {
		deny[name] = struct{}{}
	}
	for _, name := range denyListV2 {
		deny[name] = struct{}{}
	}
	for _, name := range extra {
		deny[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return &Filter{deny: deny}
}

// Denied reports whether a label is genre-level and must not become a
// subgenre tag.
func (f *Filter) Denied(label string) bool {
	_, denied := f.deny[strings.ToLower(strings.TrimSpace(label))]
	return denied
}

// Extract collects the subgenre tags from the raw votes: every label that is
// not genre-level, deduplicated case-insensitively, linked to the winning
// primary and carrying its source's weight as confidence. Votes arrive in
// source-priority order, so when two sources produce the same label the
// stronger source's tag is the one kept.
//
// The filter runs here, before any tag exists, not as a cleanup pass later.
func (f *Filter) Extract(votes []Vote, assignment Assignment) []Subgenre {
	seen := map[string]struct{}{}
	var out []Subgenre

	for _, vote := range votes {
		for _, label := range vote.Labels {
			clean := strings.ToLower(strings.TrimSpace(label))
			if clean == "" || f.Denied(clean) {
				continue
			}
			if _, dup := seen[clean]; dup {
				continue
			}
			seen[clean] = struct{}{}
			out = append(out, Subgenre{
				Label:      clean,
				Parent:     assignment.Primary,
				Confidence: vote.Source.Weight,
				Source:     vote.Source.Name,
			})
		}
	}

	return out
}
