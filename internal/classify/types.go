package classify

// #region category

// Category is the classification label for an inbound student message.
type Category string

const (
	CategoryQuestion Category = "question"
	CategoryAbuse    Category = "abuse"
	CategoryOffTopic Category = "off_topic"
	CategoryCheat    Category = "cheat"
)

// ParseCategory maps a raw model token to a Category. Anything outside the
// four known values falls open to "question": a false question only triggers
// retrieval, which degrades to "no results" — safer than dropping a real one.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryQuestion, CategoryAbuse, CategoryOffTopic, CategoryCheat:
		return Category(raw)
	default:
		return CategoryQuestion
	}
}

// #endregion category

// #region result

// Result is the classification output for one message.
// Category is the authoritative input to all downstream branching.
type Result struct {
	Category        Category
	NormalizedQuery string
	OriginalQuery   string
}

// #endregion result
