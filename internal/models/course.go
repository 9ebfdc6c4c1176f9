package models

// AccessLink is a named external link giving access to course content
type AccessLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Course is a purchasable course as served by GET /courses
type Course struct {
	ID              string       `json:"id"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Desc            string       `json:"desc"`
	Price           float64      `json:"price"`
	PriceUSD        float64      `json:"priceUsd"`
	Currency        string       `json:"currency"`
	IsActive        bool         `json:"isActive"`
	IsComingSoon    bool         `json:"isComingSoon"`
	LongDescription string       `json:"longDescription,omitempty"`
	LearningPoints  []string     `json:"learningPoints,omitempty"`
	Features        []string     `json:"features,omitempty"`
	AccessLink      string       `json:"accessLink,omitempty"`
	AccessLinks     []AccessLink `json:"accessLinks,omitempty"`
}

// Purchasable reports whether the course can be checked out
func (c Course) Purchasable() bool {
	return c.IsActive && !c.IsComingSoon
}

// AccessKind tags the variant held by CourseAccess
type AccessKind string

const (
	AccessMultipleLinks AccessKind = "MULTIPLE_LINKS"
	AccessSingleLink    AccessKind = "SINGLE_LINK"
	AccessInternal      AccessKind = "INTERNAL"
)

// CourseAccess describes how a buyer reaches the content of a paid course.
// Links is set for AccessMultipleLinks, URL for the other two kinds.
type CourseAccess struct {
	Kind  AccessKind
	URL   string
	Links []AccessLink
}

// Access resolves the access variant. Named links win over a single link,
// which wins over the internal course page.
func (c Course) Access() CourseAccess {
	if len(c.AccessLinks) > 0 {
		return CourseAccess{Kind: AccessMultipleLinks, Links: c.AccessLinks}
	}
	if c.AccessLink != "" {
		return CourseAccess{Kind: AccessSingleLink, URL: c.AccessLink}
	}
	return CourseAccess{Kind: AccessInternal, URL: "/courses/" + c.Slug}
}
