package handler

import (
	"net/http"
	"testing"

	"github.com/folio/internal/db"
)

func TestCreateSocialDefaultsActive(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodPost, "/api/socials", map[string]any{
		"platform": "github",
		"url":      "https://github.com/folio",
	})
	c, w := testContext(t, req)

	api.CreateSocial(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var body db.Social
	decodeBody(t, w, &body)
	if !body.Active {
		t.Fatalf("expected new social link to default to active")
	}
}

func TestCreateSocialMissingURL(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodPost, "/api/socials", map[string]any{"platform": "github"})
	c, w := testContext(t, req)

	api.CreateSocial(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]any
	decodeBody(t, w, &body)
	if body["field"] != "url" {
		t.Fatalf("expected field detail 'url', got %v", body["field"])
	}
}

func TestUpdateSocialDeactivates(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	social := db.Social{Platform: "x", URL: "https://x.com/folio", Active: true}
	if err := db.DB.Create(&social).Error; err != nil {
		t.Fatalf("seed social failed: %v", err)
	}

	req := jsonRequest(t, http.MethodPut, "/api/socials/1", map[string]any{"active": false})
	c, w := testContext(t, req)
	c.Params = idParam(social.ID)

	api.UpdateSocial(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body db.Social
	decodeBody(t, w, &body)
	if body.Active {
		t.Fatalf("expected link to be deactivated")
	}
	if body.Platform != "x" || body.URL != "https://x.com/folio" {
		t.Fatalf("untouched fields changed: %+v", body)
	}
}

func TestUpdateSocialNotFound(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodPut, "/api/socials/9999", map[string]any{"platform": "github"})
	c, w := testContext(t, req)
	c.Params = idParam(9999)

	api.UpdateSocial(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
