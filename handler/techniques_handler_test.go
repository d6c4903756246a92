package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setupTechniquesRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	client, cleanup := setupTestStore(t)

	techniquesService := &usecase.TechniquesService{
		TechniquesRepo: repository.GetTechniquesRepo(client, testDB),
	}

	router := gin.New()
	techniques := router.Group("/api/techniques")
	{
		techniques.GET("", func(c *gin.Context) {
			GetTechniquesHandler(c, techniquesService)
		})
		techniques.GET("/slug/:slug", func(c *gin.Context) {
			GetTechniqueBySlugHandler(c, techniquesService)
		})
		techniques.POST("", func(c *gin.Context) {
			CreateTechniqueCategoryHandler(c, techniquesService)
		})
		techniques.POST("/:id/entries", func(c *gin.Context) {
			AddTechniqueEntryHandler(c, techniquesService)
		})
		techniques.DELETE("/entries/:entryId", func(c *gin.Context) {
			RemoveTechniqueEntryHandler(c, techniquesService)
		})
		techniques.DELETE("/:id", func(c *gin.Context) {
			DeleteTechniqueCategoryHandler(c, techniquesService)
		})
	}
	return router, cleanup
}

func categoryBody(slugs ...string) map[string]interface{} {
	entries := []map[string]interface{}{}
	for _, slug := range slugs {
		entries = append(entries, map[string]interface{}{
			"title":       "Technique " + slug,
			"description": "Description for " + slug,
			"difficulty":  "Easy",
			"timeNeeded":  "10 min",
			"slug":        slug,
		})
	}
	return map[string]interface{}{
		"category":   "Focus",
		"icon":       "target",
		"techniques": entries,
	}
}

func TestTechniqueEntrySlugLookup(t *testing.T) {
	router, cleanup := setupTechniquesRouter(t)
	defer cleanup()

	w := postJSON(router, "/api/techniques", categoryBody("a", "b"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/techniques/slug/a", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w2.Code)
	}

	var resp struct {
		Data struct {
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Title != "Technique a" {
		t.Errorf("wrong entry resolved: %q", resp.Data.Title)
	}
	if resp.Data.Category != "Focus" {
		t.Errorf("parent category not joined in: %q", resp.Data.Category)
	}
}

func TestTechniqueSlugUniqueAcrossCategories(t *testing.T) {
	router, cleanup := setupTechniquesRouter(t)
	defer cleanup()

	if w := postJSON(router, "/api/techniques", categoryBody("shared-slug")); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}

	// Same sub-document slug in a different category must be rejected.
	second := categoryBody("shared-slug")
	second["category"] = "Communication"
	if w := postJSON(router, "/api/techniques", second); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate entry slug, got %d", w.Code)
	}
}

func TestTechniqueDuplicateSlugWithinPayload(t *testing.T) {
	router, cleanup := setupTechniquesRouter(t)
	defer cleanup()

	if w := postJSON(router, "/api/techniques", categoryBody("twice", "twice")); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for repeated slug in one payload, got %d", w.Code)
	}
}

func TestTechniqueInvalidDifficulty(t *testing.T) {
	router, cleanup := setupTechniquesRouter(t)
	defer cleanup()

	body := categoryBody("any-slug")
	body["techniques"].([]map[string]interface{})[0]["difficulty"] = "Impossible"

	if w := postJSON(router, "/api/techniques", body); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for difficulty outside the enum, got %d", w.Code)
	}
}

func TestRemoveTechniqueEntryViaRoute(t *testing.T) {
	router, cleanup := setupTechniquesRouter(t)
	defer cleanup()

	w := postJSON(router, "/api/techniques", categoryBody("a", "b"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}
	var created struct {
		Data struct {
			Techniques []struct {
				ID   string `json:"id"`
				Slug string `json:"slug"`
			} `json:"techniques"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}

	entryA := created.Data.Techniques[0]
	req := httptest.NewRequest(http.MethodDelete, "/api/techniques/entries/"+entryA.ID, nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	var after struct {
		Data struct {
			Techniques []struct {
				Slug string `json:"slug"`
			} `json:"techniques"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &after); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(after.Data.Techniques) != 1 || after.Data.Techniques[0].Slug != "b" {
		t.Fatalf("expected only entry b to remain, got %+v", after.Data.Techniques)
	}

	// The removed slug no longer resolves.
	req = httptest.NewRequest(http.MethodGet, "/api/techniques/slug/a", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	if w3.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after removal, got %d", w3.Code)
	}
}
