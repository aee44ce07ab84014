package w3s

import "strconv"

// PageParams are the pagination cursor parameters shared by all list
// endpoints. Cursors are opaque server tokens forwarded verbatim. PageSize
// is constrained to [1,50] by the service; the client does not validate it
// locally.
type PageParams struct {
	// From is the start of the date-time range (ISO-8601, inclusive).
	From string
	// To is the end of the date-time range (ISO-8601, inclusive).
	To string
	// PageBefore is the opaque cursor for the previous page.
	PageBefore string
	// PageAfter is the opaque cursor for the next page.
	PageAfter string
	// PageSize is the maximum number of items to return (1-50, default 10).
	PageSize int
}

// Query encodes the set fields as query parameters. Unset fields are
// omitted entirely.
func (p PageParams) Query() map[string]string {
	q := make(map[string]string)
	if p.From != "" {
		q["from"] = p.From
	}
	if p.To != "" {
		q["to"] = p.To
	}
	if p.PageBefore != "" {
		q["pageBefore"] = p.PageBefore
	}
	if p.PageAfter != "" {
		q["pageAfter"] = p.PageAfter
	}
	if p.PageSize > 0 {
		q["pageSize"] = strconv.Itoa(p.PageSize)
	}
	return q
}
