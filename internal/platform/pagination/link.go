package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuildLinkHeader constructs an RFC 8288 Link header with offset-based
// next/prev relations, preserving existing query params.
func BuildLinkHeader(baseURL string, query url.Values, page Page) string {
	var links []string
	if page.HasMore {
		q := cloneValues(query)
		q.Set("limit", strconv.Itoa(page.Limit))
		q.Set("offset", strconv.Itoa(page.Offset+page.Limit))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=\"next\"", baseURL, q.Encode()))
	}
	if page.Offset > 0 {
		q := cloneValues(query)
		q.Set("limit", strconv.Itoa(page.Limit))
		q.Set("offset", strconv.Itoa(max(page.Offset-page.Limit, 0)))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=\"prev\"", baseURL, q.Encode()))
	}
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return make(url.Values)
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
