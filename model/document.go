package model

// Document represents the open document: an ordered list of pages and
// the current page selection. The document is manipulated from a single
// goroutine; the host guarantees no concurrent mutation while a script
// call is in flight.
type Document struct {
	pages   []*Page
	current int
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddPage appends a page to the document. The first page added becomes
// the current page.
func (d *Document) AddPage(page *Page) {
	d.pages = append(d.pages, page)
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns a page by number (1-indexed), or nil if out of range.
func (d *Document) Page(number int) *Page {
	if number < 1 || number > len(d.pages) {
		return nil
	}
	return d.pages[number-1]
}

// CurrentPage returns the current page, or nil for an empty document.
func (d *Document) CurrentPage() *Page {
	if len(d.pages) == 0 {
		return nil
	}
	return d.pages[d.current]
}

// CurrentPageNumber returns the 1-indexed number of the current page,
// or 0 for an empty document.
func (d *Document) CurrentPageNumber() int {
	if len(d.pages) == 0 {
		return 0
	}
	return d.current + 1
}

// SetCurrentPage changes the page selection to the given 1-indexed
// number, clamped to the range of existing pages.
func (d *Document) SetCurrentPage(number int) {
	if len(d.pages) == 0 {
		return
	}
	if number < 1 {
		number = 1
	}
	if number > len(d.pages) {
		number = len(d.pages)
	}
	d.current = number - 1
}
