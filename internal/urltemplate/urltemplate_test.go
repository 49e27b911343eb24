package urltemplate

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		tmpl string
		want []string
	}{
		{"platform/api/v1/accounts", nil},
		{"api/v1/accounts/{account_id}/contacts/{id}", []string{"account_id", "id"}},
		{"a/{x}/b/{x}", []string{"x", "x"}},
		{"a/{x}/b/{y}}", []string{"x", "y"}},
		{"things/{id}?sort=name", []string{"id"}},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Placeholders(tt.tmpl)); diff != "" {
				t.Errorf("Placeholders(%q) mismatch (-want +got):\n%s", tt.tmpl, diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	got, err := Render("api/v1/accounts/{account_id}/contacts/{id}", []string{"42", "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "api/v1/accounts/42/contacts/7" {
		t.Errorf("got %q", got)
	}
}

func TestRender_Escapes(t *testing.T) {
	got, err := Render("inboxes/{inbox_identifier}", []string{"a b/c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inboxes/a%20b%2Fc" {
		t.Errorf("got %q", got)
	}
}

func TestRender_RepeatedPlaceholders(t *testing.T) {
	got, err := Render("a/{x}/b/{x}", []string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a/1/b/2" {
		t.Errorf("got %q", got)
	}
}

func TestRender_TooFewValues(t *testing.T) {
	_, err := Render("api/v1/accounts/{account_id}/contacts/{id}", []string{"42"})
	if !errors.Is(err, ErrURLMatch) {
		t.Fatalf("expected ErrURLMatch, got %v", err)
	}
}

func TestRender_SurplusValuesIgnored(t *testing.T) {
	got, err := Render("teams/{team_id}", []string{"3", "4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "teams/3" {
		t.Errorf("got %q", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name        string
		base, path  string
		appendSlash bool
		want        string
	}{
		{"plain", "https://chat.example.com", "api/v1/profile", false, "https://chat.example.com/api/v1/profile"},
		{"base slash", "https://chat.example.com/", "api/v1/profile", false, "https://chat.example.com/api/v1/profile"},
		{"leading slash", "https://chat.example.com/", "/api/v1/profile", false, "https://chat.example.com/api/v1/profile"},
		{"append slash", "https://chat.example.com", "platform/api/v1/users", true, "https://chat.example.com/platform/api/v1/users/"},
		{"already slashed", "https://chat.example.com", "platform/api/v1/users/", true, "https://chat.example.com/platform/api/v1/users/"},
		{"slash before query", "https://x", "a/b?c=1", true, "https://x/a/b/?c=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.base, tt.path, tt.appendSlash); got != tt.want {
				t.Errorf("Join = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeQuery(t *testing.T) {
	got, err := MergeQuery("https://x/things/9", url.Values{"sort": {"name"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://x/things/9?sort=name" {
		t.Errorf("got %q", got)
	}
}

func TestMergeQuery_Idempotent(t *testing.T) {
	q := url.Values{"page": {"2"}}
	once, err := MergeQuery("https://x/contacts", q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := MergeQuery(once, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != twice {
		t.Errorf("second merge changed url: %q -> %q", once, twice)
	}
	if n := strings.Count(twice, "page=2"); n != 1 {
		t.Errorf("expected page=2 once, found %d times in %q", n, twice)
	}
}

func TestMergeQuery_PreservesAndOverrides(t *testing.T) {
	got, err := MergeQuery("https://x/c?filter=a&page=1", url.Values{"page": {"3"}, "q": {"jo"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(got)
	want := url.Values{"filter": {"a"}, "page": {"3"}, "q": {"jo"}}
	if diff := cmp.Diff(want, u.Query()); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeQuery_Empty(t *testing.T) {
	got, err := MergeQuery("https://x/c?%zz", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://x/c?%zz" {
		t.Errorf("empty merge should leave url untouched, got %q", got)
	}
}

func TestReadable(t *testing.T) {
	got := Readable("https://x/c?labels=a%2Cb&q=john+doe")
	if got != "https://x/c?labels=a,b&q=john doe" {
		t.Errorf("got %q", got)
	}
	if Readable("https://x/c") != "https://x/c" {
		t.Error("url without query should be unchanged")
	}
}
