// Package normalize turns chart titles and artist strings into the variant
// forms that search and matching try. Everything here is a pure function.
package normalize

import (
	"regexp"
	"strings"
)

// Chart data masks profanity; the metadata provider doesn't. Restoring the
// canonical spelling before searching is what lets "B***h Don't Kill My
// Vibe" find anything.
var censorPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bb\*+h\b`), "bitch"},
	{regexp.MustCompile(`(?i)\ba\*+\b`), "ass"},
	{regexp.MustCompile(`(?i)\bs\*+t\b`), "shit"},
	{regexp.MustCompile(`(?i)\bf\*+k\b`), "fuck"},
	{regexp.MustCompile(`(?i)\bn\*+a\b`), "nigga"},
}

// Trailing qualifiers that chart titles carry but provider titles usually
// don't: collaboration parentheticals, remaster and version suffixes,
// soundtrack blurbs, radio edits, mixes.
var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*\(with\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(feat\.?\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(featuring\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(ft\.?\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(f/\s*[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(x\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*-\s*Remastered[^-]*$`),
	regexp.MustCompile(`(?i)\s*\(Remastered[^)]*\)`),
	regexp.MustCompile(`(?i)\s*-\s*[^-]*Remaster[^-]*$`),
	regexp.MustCompile(`(?i)\s*-\s*[^-]*Version[^-]*$`),
	regexp.MustCompile(`(?i)\s*\([^)]*Version[^)]*\)`),
	regexp.MustCompile(`(?i)\s*-\s*From\s+"[^"]+".*$`),
	regexp.MustCompile(`(?i)\s*\(From\s+"[^"]+".*\)`),
	regexp.MustCompile(`(?i)\s*-\s*featured\s+in.*$`),
	regexp.MustCompile(`(?i)\s*\(featured\s+in[^)]+\)`),
	regexp.MustCompile(`(?i)\s*-\s*From\s+the.*$`),
	regexp.MustCompile(`(?i)\s*\(From\s+the[^)]+\)`),
	regexp.MustCompile(`(?i)\s*-\s*[^-]*Radio[^-]*$`),
	regexp.MustCompile(`(?i)\s*\([^)]*Radio[^)]*\)`),
	regexp.MustCompile(`(?i)\s*-\s*[^-]*Mix[^-]*$`),
	regexp.MustCompile(`(?i)\s*\([^)]*Mix[^)]*\)`),
}

var (
	articleRe       = regexp.MustCompile(`(?i)^\s*(the|a|an)\s+`)
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)
	featClauseRe    = regexp.MustCompile(`(?i)\s*\(?(feat\.?|featuring|ft\.?)\s+[^)]*\)?`)
	artistSplitRe   = regexp.MustCompile(`(?i)\s+(feat\.?|ft\.?|featuring|with|f/|&|x|\+)\s+`)
	punctuationRe   = regexp.MustCompile(`[^\w\s]`)
	artistPunctRe   = regexp.MustCompile(`['\-.]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// CleanTitle restores censored words and removes the trailing qualifiers
// that make chart titles miss against provider titles.
func CleanTitle(title string) string {
	cleaned := title
	for _, p := range suffixPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	for _, p := range censorPatterns {
		cleaned = p.re.ReplaceAllString(cleaned, p.repl)
	}
	return Collapse(cleaned)
}

// StripArticle removes one leading "the", "a", or "an".
func StripArticle(s string) string {
	return strings.TrimSpace(articleRe.ReplaceAllString(s, ""))
}

// StripParentheticals removes every parenthesized run, so
// "Young'n (Holla Back)" becomes "Young'n".
func StripParentheticals(s string) string {
	return Collapse(parentheticalRe.ReplaceAllString(s, ""))
}

// StripFeature removes a featuring clause, parenthesized or bare.
func StripFeature(s string) string {
	return Collapse(featClauseRe.ReplaceAllString(s, ""))
}

// StripPunctuation replaces every non-word character with a space, for
// punctuation-insensitive comparison.
func StripPunctuation(s string) string {
	return Collapse(punctuationRe.ReplaceAllString(s, " "))
}

// Collapse folds runs of whitespace into single spaces and trims the ends.
func Collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// PrimaryArtist extracts the first-listed artist from a chart artist string:
// "Mariah Carey Feat. Jay-Z" becomes "Mariah Carey".
func PrimaryArtist(artist string) string {
	primary := artist
	if i := strings.IndexAny(primary, ","); i >= 0 {
		primary = primary[:i]
	}
	if loc := artistSplitRe.FindStringIndex(primary); loc != nil {
		primary = primary[:loc[0]]
	}
	return strings.TrimSpace(primary)
}

// StripArtistPunctuation drops apostrophes, hyphens, and periods from an
// artist name, so "Cam'ron" can also be searched as "Camron".
func StripArtistPunctuation(artist string) string {
	return Collapse(artistPunctRe.ReplaceAllString(artist, ""))
}

// TitleVariants holds the forms of one title that matching tries, from least
// to most aggressively stripped.
type TitleVariants struct {
	// Clean is the censorship-restored, qualifier-stripped title.
	Clean string

	// NoArticle is Clean without a leading article.
	NoArticle string

	// NoFeature is Clean without a featuring clause.
	NoFeature string

	// NoParens is Clean with every parenthetical removed. A match that only
	// works in this form is subtitle-dependent and held to a stricter
	// artist bar.
	NoParens string

	// Simplified is Clean with punctuation removed.
	Simplified string
}

// Title computes the variant forms of a title.
func Title(title string) TitleVariants {
	clean := CleanTitle(title)
	return TitleVariants{
		Clean:      clean,
		NoArticle:  StripArticle(clean),
		NoFeature:  StripFeature(clean),
		NoParens:   StripParentheticals(clean),
		Simplified: StripPunctuation(clean),
	}
}
