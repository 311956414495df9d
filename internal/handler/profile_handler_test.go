package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/folio/internal/db"
)

func TestGetProfileWhenAbsent(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodGet, "/api/profile", nil)
	c, w := testContext(t, req)

	api.GetProfile(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateProfileCreatesWhenAbsent(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodPut, "/api/profile", map[string]any{
		"name":    "Jax",
		"bio":     "写代码的",
		"tagline": "日拱一卒",
	})
	c, w := testContext(t, req)

	api.UpdateProfile(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.DB.Model(&db.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 profile row, got %d", count)
	}
}

func TestUpdateProfileMissingFieldReturns400(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodPut, "/api/profile", map[string]any{
		"name": "Jax",
		"bio":  "写代码的",
	})
	c, w := testContext(t, req)

	api.UpdateProfile(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]any
	decodeBody(t, w, &body)
	if body["field"] != "tagline" {
		t.Fatalf("expected field detail 'tagline', got %v", body["field"])
	}
}

func TestGetProfileRendersBioMarkdown(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.Profile{
		ID:      db.ProfileSingletonID,
		Name:    "Jax",
		Bio:     "**热爱写代码**",
		Tagline: "日拱一卒",
	}).Error; err != nil {
		t.Fatalf("seed profile failed: %v", err)
	}

	req := jsonRequest(t, http.MethodGet, "/api/profile", nil)
	c, w := testContext(t, req)

	api.GetProfile(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	decodeBody(t, w, &body)
	bioHTML, _ := body["bioHtml"].(string)
	if !strings.Contains(bioHTML, "<strong>") {
		t.Fatalf("expected rendered markdown in bioHtml, got %q", bioHTML)
	}
}

func TestGetProfileRecordsVisit(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := jsonRequest(t, http.MethodGet, "/api/profile", nil)
	c, w := testContext(t, req)

	api.GetProfile(c)

	// 即使个人信息不存在也会记录访问
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var count int64
	if err := db.DB.Model(&db.SiteVisit{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 visit row, got %d", count)
	}

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, visitorCookieName) {
		t.Fatalf("expected visitor cookie to be set, got %q", setCookie)
	}
}
