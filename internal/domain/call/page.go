package call

// Truncate applies an optional client-supplied limit to one upstream page
// of summaries. Upstream order is preserved; no re-sorting. A nil limit
// keeps everything. The returned flag is true iff a limit was supplied and
// the page held more records than it allows.
//
// Truncation is a client-side policy and says nothing about further
// upstream pages; hasMore is derived from the upstream cursor alone.
func Truncate(calls []Summary, limit *int) ([]Summary, bool) {
	if limit == nil || *limit >= len(calls) {
		return calls, false
	}
	return calls[:*limit], true
}
