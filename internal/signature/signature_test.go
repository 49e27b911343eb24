package signature

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dearkafka/woot/descriptor"
)

type listQuery struct {
	Sort string `json:"sort"`
	Page int    `json:"page"`
}

type deleteMembers struct {
	UserIDs []int  `json:"user_ids" validate:"required"`
	InboxID string `json:"inbox_id" alias:"inbox_id_" validate:"required"`
}

func TestSynthesize_Order(t *testing.T) {
	sig := Synthesize("list", []string{"account_id", "id"}, descriptor.SchemaOf(listQuery{}), nil)

	want := []Param{
		{Name: "account_id", Field: "account_id", Kind: Path, Type: "string", Position: 0, Required: true},
		{Name: "id", Field: "id", Kind: Path, Type: "string", Position: 1, Required: true},
		{Name: "sort", Field: "sort", Kind: Query, Type: "string", Position: 2},
		{Name: "page", Field: "page", Kind: Query, Type: "string", Position: 3},
	}
	if diff := cmp.Diff(want, sig.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestSynthesize_BodyTypesAndAlias(t *testing.T) {
	sig := Synthesize("delete_agent", []string{"account_id", "inbox_id"}, nil, descriptor.SchemaOf(deleteMembers{}))

	p, ok := sig.Lookup("inbox_id_")
	if !ok {
		t.Fatal("expected alias inbox_id_ to be a parameter")
	}
	if p.Kind != Body || p.Field != "inbox_id" {
		t.Errorf("alias param = %+v", p)
	}
	if sig.Kind("inbox_id") != Path {
		t.Errorf("inbox_id should stay a path param, got %v", sig.Kind("inbox_id"))
	}
	users, _ := sig.Lookup("user_ids")
	if users.Type != "[]int" || !users.Required {
		t.Errorf("user_ids param = %+v", users)
	}
}

func TestSynthesize_PrecedenceOnCollision(t *testing.T) {
	q := &descriptor.Schema{Fields: []descriptor.Field{{Name: "page", Type: "int"}}}
	b := &descriptor.Schema{Fields: []descriptor.Field{{Name: "page", Type: "int"}, {Name: "values", Type: "[]string"}}}
	sig := Synthesize("filter", []string{"account_id"}, q, b)

	if got := sig.Kind("page"); got != Query {
		t.Errorf("page resolves to %v, want query", got)
	}
	if got := sig.Kind("values"); got != Body {
		t.Errorf("values resolves to %v, want body", got)
	}
	if got := sig.Kind("unknown"); got != 0 {
		t.Errorf("unknown resolves to %v, want 0", got)
	}
}

func TestSynthesize_RepeatedPathName(t *testing.T) {
	sig := Synthesize("x", []string{"id", "id"}, nil, nil)
	if diff := cmp.Diff([]string{"id"}, sig.Names(Path)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if len(sig.PathOrder) != 2 {
		t.Errorf("PathOrder should keep both occurrences, got %v", sig.PathOrder)
	}
}

func TestSignature_Doc(t *testing.T) {
	sig := Synthesize("list", []string{"account_id"}, descriptor.SchemaOf(listQuery{}), nil)
	doc := sig.Doc()

	for _, want := range []string{
		"list(account_id, sort, page)",
		"Path parameters:",
		"account_id: string (required)",
		"Query parameters:",
		"sort: string",
		"Body schema:",
		"(none)",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("doc missing %q:\n%s", want, doc)
		}
	}
}

func TestSignature_Names(t *testing.T) {
	sig := Synthesize("update", []string{"account_id", "id"}, nil, descriptor.SchemaOf(listQuery{}))
	got := sig.Names(0)
	want := []string{"account_id", "id", "sort", "page"}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
