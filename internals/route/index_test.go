package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/guipadovan/library-manager/internals/configs"
	bookController "github.com/guipadovan/library-manager/internals/features/library/books/controller"
	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"
	"github.com/guipadovan/library-manager/internals/middlewares/auth"
	routes "github.com/guipadovan/library-manager/internals/route"
	"github.com/guipadovan/library-manager/internals/testutil"
)

type searcherFunc func(ctx context.Context, title string) ([]bookModel.BookModel, error)

func (f searcherFunc) SearchByTitle(ctx context.Context, title string) ([]bookModel.BookModel, error) {
	return f(ctx, title)
}

type envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	ErrorCode string            `json:"error_code"`
	Errors    map[string]string `json:"errors"`
	Data      any               `json:"data"`
}

func newTestApp(t *testing.T, secret string, searcher bookController.BookSearcher) *fiber.App {
	t.Helper()

	origNow, origSecret := dbtime.Now, configs.JWTSecret
	dbtime.Now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	configs.JWTSecret = secret
	t.Cleanup(func() {
		dbtime.Now = origNow
		configs.JWTSecret = origSecret
	})

	app := routes.NewApp()
	routes.SetupRoutes(app, testutil.NewTestDB(t), searcher)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, header ...string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func idOf(t *testing.T, env envelope) int64 {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %#v", env.Data)
	id, ok := m["id"].(float64)
	require.True(t, ok, "id missing: %#v", m)
	return int64(id)
}

const bookBody = `{"title":"Dune","author":"Frank Herbert","isbn":"9780441172719","publicationDate":"1990-09-01","category":"Fiction"}`
const userBody = `{"name":"Ana","email":"ana@example.com","registrationDate":"2024-01-01","phone":"(11) 91234-5678"}`

func Test_Books_CRUD(t *testing.T) {
	app := newTestApp(t, "", nil)

	status, env := do(t, app, http.MethodPost, "/v1/books", bookBody)
	require.Equal(t, fiber.StatusCreated, status)
	id := idOf(t, env)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/v1/books/%d", id), "")
	require.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, "Dune", data["title"])
	assert.Equal(t, "Frank Herbert", data["author"])
	assert.Equal(t, "9780441172719", data["isbn"])
	assert.Equal(t, "1990-09-01", data["publicationDate"])
	assert.Equal(t, "Fiction", data["category"])

	status, env = do(t, app, http.MethodPut, fmt.Sprintf("/v1/books/%d", id), strings.Replace(bookBody, "Dune", "Dune Messiah", 1))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Dune Messiah", env.Data.(map[string]any)["title"])

	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/v1/books/%d", id), "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/v1/books/%d", id), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, fmt.Sprintf("Book with id %d not found.", id), env.Message)

	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/v1/books/%d", id), "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func Test_Books_ValidationAndBadInput(t *testing.T) {
	app := newTestApp(t, "", nil)

	status, env := do(t, app, http.MethodPost, "/v1/books", `{"title":"","author":"X","isbn":"12","publicationDate":"2099-01-01","category":"Fiction"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
	assert.Equal(t, map[string]string{
		"title":           "must not be blank",
		"isbn":            "must be exactly 13 digits",
		"publicationDate": "must be a date in the past or in the present",
	}, env.Errors)

	status, _ = do(t, app, http.MethodPost, "/v1/books", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/v1/books/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPut, "/v1/books/77", bookBody)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func Test_Books_Search(t *testing.T) {
	var gotTitle string
	app := newTestApp(t, "", searcherFunc(func(ctx context.Context, title string) ([]bookModel.BookModel, error) {
		gotTitle = title
		return []bookModel.BookModel{{
			BooksTitle: "Dune", BooksAuthor: "Frank Herbert", BooksISBN: "9780441172719",
			BooksPublicationDate: datatypes.Date(time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC)), BooksCategory: "Fiction",
		}}, nil
	}))

	status, env := do(t, app, http.MethodGet, "/v1/books/search?title=dune", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "dune", gotTitle)
	list := env.Data.([]any)
	require.Len(t, list, 1)
	item := list[0].(map[string]any)
	assert.NotContains(t, item, "id")
	assert.Equal(t, "1990-09-01", item["publicationDate"])

	status, env = do(t, app, http.MethodGet, "/v1/books/search?title=%20", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "title")
}

func Test_Books_SearchUpstreamFailure(t *testing.T) {
	app := newTestApp(t, "", searcherFunc(func(ctx context.Context, title string) ([]bookModel.BookModel, error) {
		return nil, apperror.External("google books", errors.New("status 500"))
	}))

	status, env := do(t, app, http.MethodGet, "/v1/books/search?title=dune", "")

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, "UPSTREAM_ERROR", env.ErrorCode)
}

func Test_Books_SearchNotConfigured(t *testing.T) {
	app := newTestApp(t, "", nil)

	status, _ := do(t, app, http.MethodGet, "/v1/books/search?title=dune", "")

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func Test_Leases_Lifecycle(t *testing.T) {
	// setup
	app := newTestApp(t, "", nil)
	_, env := do(t, app, http.MethodPost, "/v1/users", userBody)
	userID := idOf(t, env)
	_, env = do(t, app, http.MethodPost, "/v1/books", bookBody)
	bookID := idOf(t, env)

	lease := fmt.Sprintf(`{"userId":%d,"bookId":%d,"leaseDate":"2024-05-10","returnDate":"2024-05-20"}`, userID, bookID)

	// act + assert
	status, env := do(t, app, http.MethodPost, "/v1/leases", lease)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "ACTIVE", env.Data.(map[string]any)["status"])
	leaseID := idOf(t, env)

	status, env = do(t, app, http.MethodPost, "/v1/leases", lease)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]string{"bookId": "book already in use"}, env.Errors)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/v1/users/%d/leased-books", userID), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, env.Data.([]any), 1)

	status, env = do(t, app, http.MethodPost, fmt.Sprintf("/v1/leases/%d/return", bookID), "")
	require.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, "RETURNED", data["status"])
	assert.Equal(t, "2024-05-10", data["returnDate"])

	status, env = do(t, app, http.MethodPost, fmt.Sprintf("/v1/leases/%d/return", bookID), "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]string{"bookId": "book not in use"}, env.Errors)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/v1/leases/%d", leaseID), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "RETURNED", env.Data.(map[string]any)["status"])
}

func Test_Leases_UnknownReferences(t *testing.T) {
	app := newTestApp(t, "", nil)

	status, env := do(t, app, http.MethodPost, "/v1/leases", `{"userId":41,"bookId":42,"leaseDate":"2024-05-11","returnDate":"2024-05-10"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, map[string]string{
		"userId":     "user not found",
		"bookId":     "book not found",
		"leaseDate":  "must be a date in the past or in the present",
		"returnDate": "must be a date in the future",
	}, env.Errors)
}

func Test_Users_DeleteCascadesAndLeasedBooks404(t *testing.T) {
	app := newTestApp(t, "", nil)
	_, env := do(t, app, http.MethodPost, "/v1/users", userBody)
	userID := idOf(t, env)
	_, env = do(t, app, http.MethodPost, "/v1/books", bookBody)
	bookID := idOf(t, env)

	status, env := do(t, app, http.MethodPost, "/v1/leases", fmt.Sprintf(`{"userId":%d,"bookId":%d,"leaseDate":"2024-05-10","returnDate":"2024-05-20"}`, userID, bookID))
	require.Equal(t, fiber.StatusCreated, status)
	leaseID := idOf(t, env)

	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/v1/users/%d", userID), "")
	require.Equal(t, fiber.StatusNoContent, status)

	status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/v1/leases/%d", leaseID), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/v1/users/%d/leased-books", userID), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	// the book is free again
	status, _ = do(t, app, http.MethodPost, fmt.Sprintf("/v1/leases/%d/return", bookID), "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func Test_Recommendations_Endpoint(t *testing.T) {
	app := newTestApp(t, "", nil)
	_, env := do(t, app, http.MethodPost, "/v1/users", userBody)
	userID := idOf(t, env)

	status, env := do(t, app, http.MethodGet, fmt.Sprintf("/v1/recommendations/%d?limit=5", userID), "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, env.Data)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/v1/recommendations/%d?limit=0", userID), "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "limit")

	status, _ = do(t, app, http.MethodGet, "/v1/recommendations/999", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func Test_Admin_Guard(t *testing.T) {
	t.Run("disabled without secret", func(t *testing.T) {
		app := newTestApp(t, "", nil)
		status, _ := do(t, app, http.MethodGet, "/v1/admin/leases", "")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("missing and valid token", func(t *testing.T) {
		const secret = "test-secret"
		app := newTestApp(t, secret, nil)

		status, _ := do(t, app, http.MethodGet, "/v1/admin/leases", "")
		assert.Equal(t, fiber.StatusUnauthorized, status)

		token, err := auth.SignAdminToken(secret, "ops", time.Hour)
		require.NoError(t, err)

		status, env := do(t, app, http.MethodGet, "/v1/admin/leases?status=active", "", "Authorization", "Bearer "+token)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Empty(t, env.Data)

		status, env = do(t, app, http.MethodGet, "/v1/admin/leases?status=lost", "", "Authorization", "Bearer "+token)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, env.Errors, "status")

		status, _ = do(t, app, http.MethodDelete, "/v1/admin/leases/5", "", "Authorization", "Bearer "+token)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func Test_Health(t *testing.T) {
	app := newTestApp(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
