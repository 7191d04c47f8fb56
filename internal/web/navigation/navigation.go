// Package navigation provides the settings menu and breadcrumbs rendered by the base layout.
package navigation

// Settings area section and page names.
const (
	SectionSettings = "settings"

	PageGeneral  = "general"
	PageUsers    = "users"
	PageProfile  = "profile"
	PagePassword = "password"
	PageRegister = "register"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is one entry of the settings menu.
type MenuItem struct {
	Title  string
	URL    string
	Page   string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	Menu          []MenuItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithMenu sets the settings menu, admin only entries are left out for other authors.
func (c *Context) WithMenu(isAdmin bool) *Context {
	c.Menu = Menu(isAdmin, c.ActivePage)

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// Menu returns the settings menu with activePage marked.
func Menu(isAdmin bool, activePage string) []MenuItem {
	items := make([]MenuItem, 0, 5) //nolint:mnd

	if isAdmin {
		items = append(items,
			MenuItem{Title: "General", URL: "/settings", Page: PageGeneral},
			MenuItem{Title: "Users", URL: "/settings/users", Page: PageUsers},
		)
	}

	items = append(items,
		MenuItem{Title: "Profile", URL: "/settings/profile", Page: PageProfile},
		MenuItem{Title: "Password", URL: "/settings/password", Page: PagePassword},
	)

	if isAdmin {
		items = append(items, MenuItem{Title: "Register", URL: "/settings/register", Page: PageRegister})
	}

	for i := range items {
		items[i].Active = items[i].Page == activePage
	}

	return items
}
