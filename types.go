package ogcard

// Kind discriminates the content variants the site publishes. The store keeps
// them in one table; the resolver flattens them into Metadata before any
// rendering happens, so kind-specific fields never reach the image pipeline.
type Kind string

const (
	KindPost   Kind = "post"
	KindCourse Kind = "course"
	KindPage   Kind = "page"
)

// ContentRecord is a published piece of content as the store sees it.
// Tags only apply to courses; Date and Modified are YYYY-MM-DD strings.
type ContentRecord struct {
	Path                 string
	Kind                 Kind
	Title                string
	Description          string
	AccentColor          string
	SecondaryAccentColor string
	TextColor            string
	BackgroundColor      string
	HideFooter           bool
	Tags                 []string
	Date                 string
	Modified             string
	Published            bool
}

// Metadata is the canonical record driving card rendering and fingerprinting.
// Title is always non-empty once a record leaves the resolver; empty color
// fields mean "use the theme default".
type Metadata struct {
	Title                string
	Description          string
	AccentColor          string
	SecondaryAccentColor string
	TextColor            string
	BackgroundColor      string
	HideFooter           bool
}
