package errtree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/errtree"
)

func TestResolve(t *testing.T) {
	tree := errtree.Branch{Children: map[string]errtree.Node{
		"email": errtree.Leaf{Message: "Required"},
		"address": errtree.Branch{Children: map[string]errtree.Node{
			"city":  errtree.Leaf{Message: "City is required"},
			"notes": errtree.Leaf{},
		}},
		"": errtree.Leaf{Message: "blank key"},
	}}

	tests := []struct {
		name    string
		tree    errtree.Node
		path    string
		want    string
		wantHit bool
	}{
		{name: "top level leaf", tree: tree, path: "email", want: "Required", wantHit: true},
		{name: "nested leaf", tree: tree, path: "address.city", want: "City is required", wantHit: true},
		{name: "missing nested", tree: errtree.Branch{Children: map[string]errtree.Node{"email": errtree.Leaf{Message: "Required"}}}, path: "address.city"},
		{name: "missing root key", tree: errtree.Empty(), path: "email"},
		{name: "branch is not a message", tree: tree, path: "address"},
		{name: "empty message", tree: tree, path: "address.notes"},
		{name: "path past leaf", tree: tree, path: "email.message"},
		{name: "nil tree", tree: nil, path: "email"},
		{name: "empty path looks up empty key", tree: tree, path: "", want: "blank key", wantHit: true},
		{name: "empty path on empty tree", tree: errtree.Empty(), path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := errtree.Resolve(tt.tree, tt.path)
			if got != tt.want || ok != tt.wantHit {
				t.Fatalf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantHit)
			}
		})
	}
}

func TestSetDoesNotMutate(t *testing.T) {
	original := errtree.Node(errtree.Empty())
	withEmail := errtree.Set(original, "email", "Required")
	withCity := errtree.Set(withEmail, "address.city", "Required")

	if _, ok := errtree.Resolve(original, "email"); ok {
		t.Fatalf("original tree mutated by Set")
	}
	if _, ok := errtree.Resolve(withEmail, "address.city"); ok {
		t.Fatalf("intermediate tree mutated by nested Set")
	}

	want := map[string]string{"email": "Required", "address.city": "Required"}
	if diff := cmp.Diff(want, errtree.Flatten(withCity)); diff != "" {
		t.Fatalf("flattened tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDeletePrunesEmptyBranches(t *testing.T) {
	tree := errtree.Set(errtree.Empty(), "address.city", "Required")
	tree = errtree.Set(tree, "email", "Required")

	pruned := errtree.Delete(tree, "address.city")
	if diff := cmp.Diff(map[string]string{"email": "Required"}, errtree.Flatten(pruned)); diff != "" {
		t.Fatalf("pruned tree mismatch (-want +got):\n%s", diff)
	}
	if _, ok := errtree.Resolve(tree, "address.city"); !ok {
		t.Fatalf("Delete mutated the input tree")
	}

	empty := errtree.Delete(pruned, "email")
	if got := errtree.Flatten(empty); got != nil {
		t.Fatalf("expected empty tree, got %v", got)
	}
	if unchanged := errtree.Delete(empty, "missing.path"); errtree.Flatten(unchanged) != nil {
		t.Fatalf("deleting a missing path should leave the tree empty")
	}
}

func TestFromPayload(t *testing.T) {
	payload := map[string][]string{
		"/body/name":                {"Name is required"},
		"body.owner.email":          {"  ", "Email invalid", "Email invalid"},
		"$.body.tags[0]":            {"Tags must be unique"},
		"non_field_errors":          {"Form level error"},
		"":                          {"Unscoped form error", "Form level error"},
		"request/payload/owner/age": {"Too young"},
		"skipped":                   {" "},
	}

	tree, formErrors := errtree.FromPayload(payload)

	wantFields := map[string]string{
		"name":        "Name is required",
		"owner.email": "Email invalid",
		"owner.age":   "Too young",
		"tags.0":      "Tags must be unique",
	}
	if diff := cmp.Diff(wantFields, errtree.Flatten(tree)); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Unscoped form error", "Form level error"}
	if diff := cmp.Diff(wantForm, formErrors); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}

	if msg, ok := errtree.Resolve(tree, "owner.email"); !ok || msg != "Email invalid" {
		t.Fatalf("resolve owner.email = (%q, %v)", msg, ok)
	}
}
