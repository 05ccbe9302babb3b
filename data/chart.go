package data

// A ChartEntry is one row scraped from a year-end chart page: rank, title,
// artist. Entries are transient input; they become Song rows on import.
type ChartEntry struct {
	Rank   int64
	Title  string
	Artist string
	Year   int64
}
