// Package urltemplate renders action URL templates.
//
// A template is a relative URL whose path may contain {name} placeholders,
// for example "api/v1/accounts/{account_id}/contacts/{id}". Placeholders are
// substituted positionally, the result is joined to the base URL and query
// values are merged into whatever query string the template already carries.
package urltemplate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrURLMatch is returned when a template has more placeholders than values.
var ErrURLMatch = errors.New("urltemplate: not enough values for placeholders")

var placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

// Placeholders returns the placeholder names of tmpl from left to right.
// Repeated names are kept, one entry per occurrence.
func Placeholders(tmpl string) []string {
	matches := placeholderRe.FindAllStringSubmatch(tmpl, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}
	return names
}

// Render substitutes values into the placeholders of tmpl in order. Each value
// is path-escaped. Surplus values are ignored; missing ones yield an error
// wrapping ErrURLMatch.
func Render(tmpl string, values []string) (string, error) {
	locs := placeholderRe.FindAllStringIndex(tmpl, -1)
	if len(values) < len(locs) {
		return "", fmt.Errorf("%w: %q needs %d, got %d", ErrURLMatch, tmpl, len(locs), len(values))
	}
	if len(locs) == 0 {
		return tmpl, nil
	}
	var b strings.Builder
	b.Grow(len(tmpl))
	last := 0
	for i, loc := range locs {
		b.WriteString(tmpl[last:loc[0]])
		b.WriteString(url.PathEscape(values[i]))
		last = loc[1]
	}
	b.WriteString(tmpl[last:])
	return b.String(), nil
}

// Join concatenates base and path with exactly one slash between them. When
// appendSlash is set, the path part (before any query string) is given a
// trailing slash if it lacks one.
func Join(base, path string, appendSlash bool) string {
	if appendSlash {
		p, q, hasQuery := strings.Cut(path, "?")
		if !strings.HasSuffix(p, "/") {
			p += "/"
		}
		if hasQuery {
			path = p + "?" + q
		} else {
			path = p
		}
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	path = strings.TrimPrefix(path, "/")
	return base + path
}

// MergeQuery merges query into the query string of rawURL. Keys already in
// rawURL are kept unless query sets them, in which case query wins. Merging
// the same values twice yields the same URL.
func MergeQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("urltemplate: parse %q: %w", rawURL, err)
	}
	merged := u.Query()
	for k, vs := range query {
		merged[k] = append([]string(nil), vs...)
	}
	u.RawQuery = merged.Encode()
	return u.String(), nil
}

// Readable returns rawURL with its query string percent-decoded, for display.
// The result is not meant to be sent.
func Readable(rawURL string) string {
	p, q, ok := strings.Cut(rawURL, "?")
	if !ok {
		return rawURL
	}
	if dq, err := url.QueryUnescape(q); err == nil {
		q = dq
	}
	return p + "?" + q
}
