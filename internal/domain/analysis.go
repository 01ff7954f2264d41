package domain

// FolderAnalysis is the result of scanning one folder. All eleven
// categories are present as keys even when empty. Ownership transfers
// to the caller once returned; the scanner never mutates it afterwards.
type FolderAnalysis struct {
	TotalFiles int                       `json:"total_files"`
	Categories map[Category][]FileRecord `json:"categories"`
	// Skipped holds per-entry diagnostics for entries that could not be
	// read during the scan. Such entries never fail the whole scan.
	Skipped []string `json:"skipped,omitempty"`
}

// NewFolderAnalysis returns an empty analysis with every category key
// initialized to an empty sequence.
func NewFolderAnalysis() *FolderAnalysis {
	categories := make(map[Category][]FileRecord, len(categoryNames))
	for _, c := range Categories() {
		categories[c] = []FileRecord{}
	}
	return &FolderAnalysis{Categories: categories}
}

// Add classifies the record, appends it to its category's sequence and
// increments the file total. Returns the assigned category.
func (a *FolderAnalysis) Add(record FileRecord) Category {
	category := Classify(record)
	a.Categories[category] = append(a.Categories[category], record)
	a.TotalFiles++
	return category
}

// CategoryCount pairs a category with the number of files assigned to it.
type CategoryCount struct {
	Category Category
	Count    int
}

// Summary returns per-category counts in display order, skipping
// empty categories.
func (a *FolderAnalysis) Summary() []CategoryCount {
	var out []CategoryCount
	for _, c := range Categories() {
		if n := len(a.Categories[c]); n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}
