package shared

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// Flash is a one-shot notification carried across a redirect
type Flash struct {
	Kind    string
	Message string
}

// Layout is the data every page passes to the base layout
type Layout struct {
	Title       string
	ActiveNav   string
	Breadcrumbs []Breadcrumb
	UserEmail   string
	UserName    string
	IsAdmin     bool
	Flashes     []Flash
	SupportURL  string
}

// SignedIn reports whether the navbar shows the account links
func (l Layout) SignedIn() bool {
	return l.UserEmail != ""
}
