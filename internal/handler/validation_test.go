package handler

import "testing"

func TestValidationErrors(t *testing.T) {
	v := ValidationErrors{}
	v.Require("name", "  ")
	v.Email("email", "not-an-email")
	v.OneOf("status", "bogus", []string{"draft", "published"})
	v.Slug("slug", "Not A Slug")
	v.MaxLen("subject", "this is far too long", 5)

	if v.Ok() {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"name", "email", "status", "slug", "subject"} {
		if _, present := v[field]; !present {
			t.Errorf("missing error for %q", field)
		}
	}
}

func TestValidationErrors_Valid(t *testing.T) {
	v := ValidationErrors{}
	v.Require("name", "Jane")
	v.Email("email", "jane@example.com")
	v.OneOf("status", "draft", []string{"draft", "published"})
	v.OneOf("optional", "", []string{"a", "b"})
	v.Email("optional_email", "")
	v.Slug("slug", "my-page-2")

	if !v.Ok() {
		t.Errorf("unexpected errors: %v", v)
	}
}
