package route

import "sync"

// A Document holds the process-wide display title.
//
// Pass Document.SetTitle as the TitleSetter of a Resolver
// to have navigations update it.
type Document struct {
	mu    sync.RWMutex
	title string
}

// NewDocument constructs a Document displaying title.
func NewDocument(title string) *Document {
	return &Document{title: title}
}

// SetTitle replaces the title.
func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// Title returns the current title.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}
