package contract

import (
	"errors"
	"net/http"
	"testing"
)

func TestBuildURLSubstitutesParams(t *testing.T) {
	url, err := BuildURL("/api/skills/:id", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("build url failed: %v", err)
	}
	if url != "/api/skills/42" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestBuildURLNoPlaceholders(t *testing.T) {
	url, err := BuildURL("/api/skills", nil)
	if err != nil {
		t.Fatalf("build url failed: %v", err)
	}
	if url != "/api/skills" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestBuildURLFailsLoudlyOnMissingParam(t *testing.T) {
	if _, err := BuildURL("/api/skills/:id", nil); err == nil {
		t.Fatalf("expected error for unresolved placeholder")
	}
	if _, err := BuildURL("/api/skills/:id", map[string]string{"id": "  "}); err == nil {
		t.Fatalf("expected error for blank param value")
	}
}

func TestCheckResponseRejectsUndeclaredStatus(t *testing.T) {
	op := API.Skills.List
	if err := op.CheckResponse(http.StatusTeapot, []byte(`[]`)); err == nil {
		t.Fatalf("expected error for undeclared status")
	}
}

func TestCheckResponseRejectsShapeDrift(t *testing.T) {
	op := API.Auth.Login
	// 用户响应绝不能带密码字段
	body := []byte(`{"id":1,"username":"admin","password":"$2a$10$hash"}`)
	if err := op.CheckResponse(http.StatusOK, body); err == nil {
		t.Fatalf("expected password field to be rejected")
	}

	ok := []byte(`{"id":1,"username":"admin"}`)
	if err := op.CheckResponse(http.StatusOK, ok); err != nil {
		t.Fatalf("expected clean user body to pass, got %v", err)
	}
}

func TestDeleteDeclaresEmptyNoContent(t *testing.T) {
	op := API.Projects.Delete
	if err := op.CheckResponse(http.StatusNoContent, nil); err != nil {
		t.Fatalf("expected empty 204 to pass, got %v", err)
	}
	if err := op.CheckResponse(http.StatusNoContent, []byte(`{"message":"x"}`)); err == nil {
		t.Fatalf("expected non-empty 204 body to be rejected")
	}
}

func TestInputValidationReportsField(t *testing.T) {
	cases := []struct {
		input Input
		field string
	}{
		{&Credentials{Password: "pw"}, "username"},
		{&ProfileUpsert{Bio: "b", Tagline: "t"}, "name"},
		{&SkillCreate{Name: "Go"}, "category"},
		{&ProjectCreate{Description: "d"}, "title"},
		{&SocialCreate{Platform: "github"}, "url"},
	}

	for _, tc := range cases {
		err := tc.input.Validate()
		if err == nil {
			t.Fatalf("expected validation error for %+v", tc.input)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if ve.Field != tc.field {
			t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
		}
	}
}

func TestPatchValidationAllowsOmittedFields(t *testing.T) {
	patches := []Input{
		&SkillPatch{},
		&ProjectPatch{},
		&SocialPatch{},
	}
	for _, patch := range patches {
		if err := patch.Validate(); err != nil {
			t.Fatalf("empty patch should validate, got %v", err)
		}
	}

	blank := "   "
	if err := (&SkillPatch{Category: &blank}).Validate(); err == nil {
		t.Fatalf("expected blank category to be rejected")
	}
}
