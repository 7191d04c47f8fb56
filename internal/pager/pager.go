// Package pager implements the 1-based page descriptor used by paginated listings.
package pager

const defaultItemsPerPage = 10

// Pager describes one page of an ordered listing.
// Newer and Older are the neighbouring page numbers, listings are ordered newest first.
type Pager struct {
	CurrentPage  int
	ItemsPerPage int
	Total        int
	LastPage     int
	Newer        int
	Older        int
	ShowNewer    bool
	ShowOlder    bool
}

// New returns a pager for page, pages below 1 select the first page.
func New(page, itemsPerPage int) *Pager {
	if page < 1 {
		page = 1
	}

	if itemsPerPage < 1 {
		itemsPerPage = defaultItemsPerPage
	}

	return &Pager{
		CurrentPage:  page,
		ItemsPerPage: itemsPerPage,
	}
}

// Configure sets the total item count and derives the navigation fields.
// A current page past the last page is moved onto the last page.
func (p *Pager) Configure(total int) {
	if total < 0 {
		total = 0
	}

	p.Total = total

	p.LastPage = (total + p.ItemsPerPage - 1) / p.ItemsPerPage
	if p.LastPage < 1 {
		p.LastPage = 1
	}

	if p.CurrentPage > p.LastPage {
		p.CurrentPage = p.LastPage
	}

	p.Newer = p.CurrentPage - 1
	p.ShowNewer = p.Newer > 0

	p.Older = p.CurrentPage + 1
	p.ShowOlder = p.CurrentPage < p.LastPage

	if !p.ShowOlder {
		p.Older = 0
	}
}

// Skip is the number of items before the current page.
func (p *Pager) Skip() int {
	return (p.CurrentPage - 1) * p.ItemsPerPage
}

// Take is the maximum number of items on the current page.
func (p *Pager) Take() int {
	return p.ItemsPerPage
}
