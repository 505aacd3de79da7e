package newpost

// Post describes a scaffolded post and where its files were written.
type Post struct {
	Slug         string
	Title        string
	CanonicalURL string
	Dir          string
	IndexPath    string
	ContentPath  string
}

// IndexData carries the values substituted into the index template.
type IndexData struct {
	Title        string
	CanonicalURL string // canonical link
	ContentFile  string // file pulled in by the include directive

	// Only rendered by the meta layout. Empty fields fall back to
	// placeholder tokens meant to be edited by hand.
	Description string
	Keywords    string
	Date        string
	Tags        []string
}

// Placeholder tokens written for meta fields that were not supplied.
const (
	PlaceholderDescription = "{{description}}"
	PlaceholderKeywords    = "{{keywords}}"
	PlaceholderDate        = "{{date}}"
	PlaceholderTags        = "{{tags}}"
)
