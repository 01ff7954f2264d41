package domain

// Category is one of the eleven fixed buckets files are sorted into.
type Category int

const (
	CategoryDocuments Category = iota
	CategoryImages
	CategoryVideos
	CategoryAudio
	CategoryArchives
	CategoryCode
	CategorySoftware
	CategoryWorkDocuments
	CategoryPersonalPhotos
	CategorySensitive
	CategoryOther
)

var categoryNames = [...]string{
	CategoryDocuments:      "Documents",
	CategoryImages:         "Images",
	CategoryVideos:         "Videos",
	CategoryAudio:          "Audio",
	CategoryArchives:       "Archives",
	CategoryCode:           "Code",
	CategorySoftware:       "Software",
	CategoryWorkDocuments:  "Work Documents",
	CategoryPersonalPhotos: "Personal Photos",
	CategorySensitive:      "Sensitive",
	CategoryOther:          "Other",
}

// String returns the display name, which is also the destination
// folder name used when organizing.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Other"
	}
	return categoryNames[c]
}

// MarshalText renders the category name; used for JSON map keys.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name. Unknown names map to Other.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		parsed = CategoryOther
	}
	*c = parsed
	return nil
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory resolves a display name back to its category.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return CategoryOther, false
}
