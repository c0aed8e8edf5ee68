package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/BookShelfServices01/books-management-api/internal/config"
	dbpkg "github.com/BookShelfServices01/books-management-api/internal/db"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "8080"}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doRequest(
	t *testing.T,
	r *gin.Engine,
	method string,
	path string,
	body any,
	token string,
) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
		}
	}
	return w, env
}

func registerUser(t *testing.T, r *gin.Engine, name, phone, email string) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/register", gin.H{
		"title":    "Mr",
		"name":     name,
		"phone":    phone,
		"email":    email,
		"password": "password1",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d (body: %s)", email, w.Code, w.Body.String())
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	return user.ID
}

func loginUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": "password1",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: got %d (body: %s)", email, w.Code, w.Body.String())
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return data.Token
}

func createBook(t *testing.T, r *gin.Engine, token, userID, title, isbn, category string) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/books", gin.H{
		"title":       title,
		"excerpt":     "an excerpt",
		"userId":      userID,
		"ISBN":        isbn,
		"category":    category,
		"subcategory": "general",
		"releasedAt":  "2021-09-17",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create book %q: got %d (body: %s)", title, w.Code, w.Body.String())
	}

	var book struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &book); err != nil {
		t.Fatalf("decode book: %v", err)
	}
	return book.ID
}

func addReview(t *testing.T, r *gin.Engine, bookID string, rating float64) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/books/"+bookID+"/review", gin.H{
		"bookId":     bookID,
		"reviewedAt": "2022-01-10",
		"reviewedBy": "a reader",
		"rating":     rating,
		"review":     "worth reading",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("add review: got %d (body: %s)", w.Code, w.Body.String())
	}

	var review struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &review); err != nil {
		t.Fatalf("decode review: %v", err)
	}
	return review.ID
}
