package paginate

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultTrigger is the query parameter carrying the page number.
const DefaultTrigger = "p"

// PageLink is a page number and its URL.
type PageLink struct {
	Page int    `json:"page"`
	URL  string `json:"url"`
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithBaseURL sets the URL of the first page. It may carry a query string.
// Without it page 1 links to the current document ("?").
func WithBaseURL(base string) Option {
	return func(p *Paginator) {
		p.baseURL = base
	}
}

// WithPageTrigger sets the page trigger. A trigger ending in "/" is a path
// prefix, anything else is a query parameter.
func WithPageTrigger(trigger string) Option {
	return func(p *Paginator) {
		if trigger := strings.TrimLeft(trigger, "/"); trigger != "" {
			p.trigger = trigger
		}
	}
}

// Paginator describes one page of a result set.
type Paginator struct {
	Total      int
	PerPage    int
	Current    int
	TotalPages int

	baseURL string
	trigger string
}

// New creates a Paginator. perPage below 1 becomes 1, negative totals become
// 0 and current is clamped into [1, TotalPages].
func New(total, perPage, current int, opts ...Option) *Paginator {
	p := &Paginator{
		Total:   max(total, 0),
		PerPage: max(perPage, 1),
		trigger: DefaultTrigger,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.TotalPages = max((p.Total+p.PerPage-1)/p.PerPage, 1)
	p.Current = min(max(current, 1), p.TotalPages)
	return p
}

// Offset returns the number of items before the current page.
func (p *Paginator) Offset() int {
	return (p.Current - 1) * p.PerPage
}

// First returns the 1-based position of the first item on the page, or 0
// when the result set is empty.
func (p *Paginator) First() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// Last returns the 1-based position of the last item on the page, or 0 when
// the result set is empty.
func (p *Paginator) Last() int {
	return min(p.Current*p.PerPage, p.Total)
}

// HasPrev reports whether a page precedes the current one.
func (p *Paginator) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a page follows the current one.
func (p *Paginator) HasNext() bool { return p.Current < p.TotalPages }

// PageURL returns the URL of page n, or "" when n is out of range. A valid
// page never yields "".
func (p *Paginator) PageURL(n int) string {
	if n < 1 || n > p.TotalPages {
		return ""
	}
	if n == 1 {
		if p.baseURL == "" {
			return "?"
		}
		return p.baseURL
	}
	if p.pathTrigger() {
		return p.pathURL(n)
	}
	return p.queryURL(n)
}

// PrevURL returns the previous page URL, or "" on the first page.
func (p *Paginator) PrevURL() string { return p.PageURL(p.Current - 1) }

// NextURL returns the next page URL, or "" on the last page.
func (p *Paginator) NextURL() string { return p.PageURL(p.Current + 1) }

// FirstURL returns the URL of page 1.
func (p *Paginator) FirstURL() string { return p.PageURL(1) }

// LastURL returns the URL of the last page.
func (p *Paginator) LastURL() string { return p.PageURL(p.TotalPages) }

// PrevURLs returns up to dist pages before the current one, in ascending
// order.
func (p *Paginator) PrevURLs(dist int) []PageLink {
	if dist < 1 {
		return nil
	}
	return p.RangeURLs(p.Current-dist, p.Current-1)
}

// NextURLs returns up to dist pages after the current one.
func (p *Paginator) NextURLs(dist int) []PageLink {
	if dist < 1 {
		return nil
	}
	return p.RangeURLs(p.Current+1, p.Current+dist)
}

// RangeURLs returns the pages in [start, end] clamped to the valid range.
func (p *Paginator) RangeURLs(start, end int) []PageLink {
	start = max(start, 1)
	end = min(end, p.TotalPages)
	if start > end {
		return nil
	}

	links := make([]PageLink, 0, end-start+1)
	for n := start; n <= end; n++ {
		links = append(links, PageLink{Page: n, URL: p.PageURL(n)})
	}
	return links
}

// DynamicRangeURLs returns a window of at most size pages that contains the
// current page, centered on it where the bounds allow.
func (p *Paginator) DynamicRangeURLs(size int) []PageLink {
	if size < 1 {
		return nil
	}
	start := max(p.Current-size/2, 1)
	end := start + size - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = max(end-size+1, 1)
	}
	return p.RangeURLs(start, end)
}

func (p *Paginator) pathTrigger() bool {
	return strings.HasSuffix(p.trigger, "/")
}

func (p *Paginator) queryURL(n int) string {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		sep := "?"
		if strings.Contains(p.baseURL, "?") {
			sep = "&"
		}
		return p.baseURL + sep + url.QueryEscape(p.trigger) + "=" + strconv.Itoa(n)
	}
	q := u.Query()
	q.Set(p.trigger, strconv.Itoa(n))
	u.RawQuery = q.Encode()
	return u.String()
}

func (p *Paginator) pathURL(n int) string {
	segment := p.trigger + strconv.Itoa(n)
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return strings.TrimRight(p.baseURL, "/") + "/" + segment
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + segment
	u.RawPath = ""
	return u.String()
}
