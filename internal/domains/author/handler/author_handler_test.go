package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authors-backend/internal/domains/author"
	"authors-backend/internal/domains/author/service"
)

type fakeRepository struct {
	rows   map[int64]author.Author
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[int64]author.Author), nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	created := author.Author{ID: f.nextID, Name: a.Name, Surname: a.Surname}
	f.rows[created.ID] = created
	f.nextID++
	return &created, nil
}

func (f *fakeRepository) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := f.rows[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	updated := author.Author{ID: a.ID, Name: a.Name, Surname: a.Surname}
	f.rows[a.ID] = updated
	return &updated, nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*author.Author, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]author.Author, error) {
	var out []author.Author
	for id := int64(1); id < f.nextID; id++ {
		if a, ok := f.rows[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByTerm(ctx context.Context, term string) ([]author.Author, error) {
	all, _ := f.ListAll(ctx)
	var out []author.Author
	for _, a := range all {
		if strings.Contains(a.Name, term) || strings.Contains(a.Surname, term) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

// newTestRouter wires the real service and handler over the in-memory
// repository, with the same routes the api binary registers.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(service.NewAuthorService(newFakeRepository()))

	router := gin.New()
	authors := router.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.PUT("", h.Update)
		authors.GET("", h.ListAll)
		authors.GET("/total", h.Count)
		authors.GET("/nomeOrSobrenome", h.FindByTerm)
		authors.GET("/:id", h.FindByID)
		authors.DELETE("/:id", h.Delete)
	}
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestCreateThenFetchScenario(t *testing.T) {
	router := newTestRouter()

	// POST /authors assigns an id
	rec, env := doRequest(t, router, http.MethodPost, "/authors",
		gin.H{"name": "Machado", "surname": "de Assis"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var created author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	// GET /authors/{id} returns the same two fields
	rec, env = doRequest(t, router, http.MethodGet, fmt.Sprintf("/authors/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Machado", fetched.Name)
	assert.Equal(t, "de Assis", fetched.Surname)

	// GET /authors/total returns 1
	rec, env = doRequest(t, router, http.MethodGet, "/authors/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "1", string(env.Data))

	// DELETE then GET reports not-found
	rec, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, router, http.MethodGet, fmt.Sprintf("/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	router := newTestRouter()

	rec, env := doRequest(t, router, http.MethodPost, "/authors", gin.H{"name": "Machado"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCreateRejectsOverlongName(t *testing.T) {
	router := newTestRouter()

	rec, _ := doRequest(t, router, http.MethodPost, "/authors",
		gin.H{"name": strings.Repeat("a", 46), "surname": "de Assis"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	router := newTestRouter()

	rec, env := doRequest(t, router, http.MethodPut, "/authors",
		gin.H{"id": 99, "name": "Jorge", "surname": "Amado"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	// The rejected update must not have inserted anything.
	rec, env = doRequest(t, router, http.MethodGet, "/authors/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "0", string(env.Data))
}

func TestUpdateOverwritesRecord(t *testing.T) {
	router := newTestRouter()

	_, env := doRequest(t, router, http.MethodPost, "/authors",
		gin.H{"name": "Graciliano", "surname": "Ramos"})
	var created author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env := doRequest(t, router, http.MethodPut, "/authors",
		gin.H{"id": created.ID, "name": "Rachel", "surname": "de Queiroz"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Rachel", updated.Name)
	assert.Equal(t, "de Queiroz", updated.Surname)
}

func TestDeleteTwiceReturns404(t *testing.T) {
	router := newTestRouter()

	_, env := doRequest(t, router, http.MethodPost, "/authors",
		gin.H{"name": "Lima", "surname": "Barreto"})
	var created author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindByIDRejectsNonNumericID(t *testing.T) {
	router := newTestRouter()

	rec, env := doRequest(t, router, http.MethodGet, "/authors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestListAllReturnsEveryAuthor(t *testing.T) {
	router := newTestRouter()

	for _, body := range []gin.H{
		{"name": "Machado", "surname": "de Assis"},
		{"name": "Clarice", "surname": "Lispector"},
	} {
		rec, _ := doRequest(t, router, http.MethodPost, "/authors", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := doRequest(t, router, http.MethodGet, "/authors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var authors []author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &authors))
	assert.Len(t, authors, 2)
}

func TestSearchByTerm(t *testing.T) {
	router := newTestRouter()

	for _, body := range []gin.H{
		{"name": "Machado", "surname": "de Assis"},
		{"name": "Clarice", "surname": "Lispector"},
	} {
		rec, _ := doRequest(t, router, http.MethodPost, "/authors", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := doRequest(t, router, http.MethodGet, "/authors/nomeOrSobrenome?termo=Mach", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var matched []author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "Machado", matched[0].Name)

	// Empty term matches the full set
	rec, env = doRequest(t, router, http.MethodGet, "/authors/nomeOrSobrenome?termo=", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &matched))
	assert.Len(t, matched, 2)
}
