package model

// HeadingLevel represents the hierarchical level of a classified heading
type HeadingLevel int

const (
	LevelOther HeadingLevel = iota // Not a heading
	LevelH1                        // H1 - Main title/chapter
	LevelH2                        // H2 - Major section
	LevelH3                        // H3 - Subsection
)

// String returns the level in the output-schema form ("H1".."H3", "Other")
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "Other"
	}
}

// Heading label values used by classifiers and the inference schema.
const (
	LabelTitle        = "title"
	LabelSectionTitle = "section-title"
	LabelOther        = "other"
)

// ClassifiedHeading is a fragment promoted to heading status.
// Instances are created by a classifier and never mutated afterwards.
type ClassifiedHeading struct {
	// ID is the source fragment's ordinal (1-based in classifier output)
	ID int `json:"id"`

	// Label is the classifier label ("title" or "section-title")
	Label string `json:"label"`

	// Text, Page and Box are inherited from the source fragment
	Text string `json:"text"`
	Page int    `json:"page"`
	Box  Rect   `json:"box"`

	// Level is the assigned heading level
	Level HeadingLevel `json:"heading_level"`

	// Confidence is the classifier confidence in [0, 1]
	Confidence float64 `json:"confidence"`

	// Order disambiguates ambiguous levels; lower means higher in the
	// hierarchy
	Order int `json:"order"`
}
