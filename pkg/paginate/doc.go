// Package paginate computes page windows and page links for listing
// templates.
//
// Pages are 1-based. The page number travels either as a query parameter
// (the default trigger "p", giving /blog?p=2) or as a path prefix when the
// trigger ends in a slash ("page/", giving /blog/page/2). The first page
// never carries the trigger, so /blog stays canonical.
//
//	p := paginate.New(total, 20, page, paginate.WithBaseURL("/blog"))
//	rows := repo.List(ctx, p.Offset(), p.PerPage)
//	for _, link := range p.DynamicRangeURLs(7) {
//	    // link.Page, link.URL
//	}
package paginate
