package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setupResourcesRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	client, cleanup := setupTestStore(t)

	resourcesService := &usecase.ResourcesService{
		ResourcesRepo: repository.GetResourcesRepo(client, testDB),
	}

	router := gin.New()
	resources := router.Group("/api/resources")
	{
		resources.GET("", func(c *gin.Context) {
			GetResourcesHandler(c, resourcesService)
		})
		resources.POST("", func(c *gin.Context) {
			CreateResourceHandler(c, resourcesService)
		})
		resources.PUT("/:id", func(c *gin.Context) {
			UpdateResourceHandler(c, resourcesService)
		})
		resources.DELETE("/:id", func(c *gin.Context) {
			DeleteResourceHandler(c, resourcesService)
		})
	}
	return router, cleanup
}

func bundleBody() map[string]interface{} {
	return map[string]interface{}{
		"downloadables": []map[string]string{
			{
				"title":       "Weekly Planner Template",
				"description": "Printable planner",
				"type":        "PDF",
				"size":        "1.2 MB",
				"url":         "https://example.com/planner.pdf",
			},
		},
		"books": []map[string]string{
			{
				"title":       "Atomic Habits",
				"author":      "James Clear",
				"description": "Small habits, big results",
				"url":         "https://example.com/atomic-habits",
			},
		},
		"external": []map[string]string{},
	}
}

func TestResourceBundleLifecycle(t *testing.T) {
	router, cleanup := setupResourcesRouter(t)
	defer cleanup()

	w := postJSON(router, "/api/resources", bundleBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}

	// The client consumes the listing's first element as the bundle.
	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w2.Code)
	}
	var listing struct {
		Data []struct {
			ID            string `json:"id"`
			Downloadables []struct {
				Title string `json:"title"`
			} `json:"downloadables"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(listing.Data) != 1 || listing.Data[0].ID != created.Data.ID {
		t.Fatalf("expected the created bundle, got %+v", listing.Data)
	}

	// Replacing one list leaves the others untouched.
	update, _ := json.Marshal(map[string]interface{}{
		"external": []map[string]string{
			{
				"title":       "Getting Things Done",
				"description": "Methodology overview",
				"url":         "https://example.com/gtd",
			},
		},
	})
	req = httptest.NewRequest(http.MethodPut, "/api/resources/"+created.Data.ID, bytes.NewReader(update))
	req.Header.Set("Content-Type", "application/json")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}
	var updated struct {
		Data struct {
			Downloadables []struct {
				Title string `json:"title"`
			} `json:"downloadables"`
			External []struct {
				Title string `json:"title"`
			} `json:"external"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w3.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode update response: %v", err)
	}
	if len(updated.Data.External) != 1 {
		t.Errorf("external list not replaced: %+v", updated.Data.External)
	}
	if len(updated.Data.Downloadables) != 1 {
		t.Errorf("downloadables list should be untouched: %+v", updated.Data.Downloadables)
	}

	// Delete, including a second idempotent pass.
	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodDelete, "/api/resources/"+created.Data.ID, nil)
		w4 := httptest.NewRecorder()
		router.ServeHTTP(w4, req)
		if w4.Code != http.StatusOK {
			t.Fatalf("delete pass %d: expected 200, got %d", i+1, w4.Code)
		}
	}
}
