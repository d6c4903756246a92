package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const testDB = "growthhub_handler_test"

func setupTestStore(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	uri := utils.GetEnvAsString("MONGO_TEST_URI", "mongodb://localhost:27017")
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	db := client.Database(testDB)
	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	cleanup := func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return client, cleanup
}

func setupArticlesRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	client, cleanup := setupTestStore(t)

	articlesService := &usecase.ArticlesService{
		ArticlesRepo: repository.GetArticlesRepo(client, testDB),
	}

	router := gin.New()
	articles := router.Group("/api/articles")
	{
		articles.GET("", func(c *gin.Context) {
			GetArticlesHandler(c, articlesService)
		})
		articles.GET("/slug/:slug", func(c *gin.Context) {
			GetArticleBySlugHandler(c, articlesService)
		})
		articles.GET("/:id", func(c *gin.Context) {
			GetArticleHandler(c, articlesService)
		})
		articles.POST("", func(c *gin.Context) {
			CreateArticleHandler(c, articlesService)
		})
		articles.PUT("/:id", func(c *gin.Context) {
			UpdateArticleHandler(c, articlesService)
		})
		articles.DELETE("/:id", func(c *gin.Context) {
			DeleteArticleHandler(c, articlesService)
		})
	}
	return router, cleanup
}

func articleBody(slug string) map[string]interface{} {
	return map[string]interface{}{
		"title":    "Habit Stacking",
		"content":  "Attach a new habit to an existing one.",
		"excerpt":  "Small changes that stick",
		"category": "Habits",
		"readTime": "6 min",
		"image":    "/images/habits.png",
		"author": map[string]string{
			"name":  "Sam Lee",
			"image": "/images/sam.png",
		},
		"slug": slug,
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestArticleSlugLifecycle(t *testing.T) {
	router, cleanup := setupArticlesRouter(t)
	defer cleanup()

	// Invalid slug: uppercase and punctuation violate the pattern.
	w := postJSON(router, "/api/articles", articleBody("My Slug!"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid slug, got %d: %s", w.Code, w.Body.String())
	}

	// Valid slug is accepted and gets a generated id.
	w = postJSON(router, "/api/articles", articleBody("my-slug"))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("expected a generated id in the response body")
	}

	// The slug resolves to the created article.
	req := httptest.NewRequest(http.MethodGet, "/api/articles/slug/my-slug", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 on slug lookup, got %d", w2.Code)
	}

	// A second article with the same slug is rejected as a duplicate.
	w = postJSON(router, "/api/articles", articleBody("my-slug"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate slug, got %d: %s", w.Code, w.Body.String())
	}
}

func TestArticleMissingRequiredField(t *testing.T) {
	router, cleanup := setupArticlesRouter(t)
	defer cleanup()

	body := articleBody("valid-slug")
	delete(body, "title")

	w := postJSON(router, "/api/articles", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a validation error message")
	}
}

func TestArticleSlugLookupNotFound(t *testing.T) {
	router, cleanup := setupArticlesRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/articles/slug/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestArticleDeleteUnknownIDSucceeds(t *testing.T) {
	router, cleanup := setupArticlesRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected idempotent delete to return 200, got %d", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Article deleted" {
		t.Errorf("unexpected confirmation message: %q", resp.Message)
	}
}

func TestArticleUpdateReturnsMergedDocument(t *testing.T) {
	router, cleanup := setupArticlesRouter(t)
	defer cleanup()

	w := postJSON(router, "/api/articles", articleBody("update-me"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", w.Code)
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	data, _ := json.Marshal(map[string]string{"title": "Habit Stacking, Revised"})
	req := httptest.NewRequest(http.MethodPut, "/api/articles/"+created.Data.ID, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	var updated struct {
		Data struct {
			Title   string `json:"title"`
			Excerpt string `json:"excerpt"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode update response: %v", err)
	}
	if updated.Data.Title != "Habit Stacking, Revised" {
		t.Errorf("title not updated: %q", updated.Data.Title)
	}
	if updated.Data.Excerpt != "Small changes that stick" {
		t.Errorf("untouched field changed: %q", updated.Data.Excerpt)
	}
}
