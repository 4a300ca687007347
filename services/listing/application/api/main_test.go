package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/services/listing/application/api"
	appsvcs "github.com/metazeka/backend/services/listing/application/services"
	"github.com/metazeka/backend/services/listing/domain"
	"github.com/metazeka/backend/services/listing/domain/models"
)

const noRowsMessage = "JSON object requested, multiple (or no) rows returned"

// memRepo is an in-memory ListingRepository with store-like semantics.
type memRepo struct {
	mu      sync.Mutex
	rows    map[string]*models.Listing
	seq     int
	calls   int
	failure error
	ctxErrs []error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[string]*models.Listing{}}
}

func (m *memRepo) enter(ctx context.Context) error {
	m.calls++
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	return m.failure
}

func notFound(op string) error {
	return &domain.StoreError{Op: op, Code: "PGRST116", Message: noRowsMessage, NotFound: true}
}

func (m *memRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx); err != nil {
		return nil, err
	}
	out := []*models.Listing{}
	for _, l := range m.rows {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx); err != nil {
		return nil, err
	}
	l, ok := m.rows[id]
	if !ok {
		return nil, notFound("get")
	}
	cp := *l
	return &cp, nil
}

func (m *memRepo) Create(ctx context.Context, d *models.Draft) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx); err != nil {
		return nil, err
	}
	m.seq++
	l := &models.Listing{
		ID:          fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq),
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   time.Date(2025, 3, 1, 0, 0, m.seq, 0, time.UTC),
	}
	m.rows[l.ID] = l
	cp := *l
	return &cp, nil
}

func (m *memRepo) Update(ctx context.Context, id string, p models.Patch) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx); err != nil {
		return nil, err
	}
	l, ok := m.rows[id]
	if !ok {
		return nil, notFound("update")
	}
	if p.Title.Set {
		l.Title = p.Title.Value
	}
	if p.Description.Set {
		if p.Description.Null {
			l.Description = nil
		} else {
			v := p.Description.Value
			l.Description = &v
		}
	}
	cp := *l
	return &cp, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx); err != nil {
		return err
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo) Ping(context.Context) error { return m.failure }

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T) (*memRepo, http.Handler) {
	t.Helper()
	repo := newMemRepo()
	svcs, err := appsvcs.NewWithRepository(repo, logger.Discard())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { api.ListingRoutes(r, svcs) })
	return repo, r
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope, string) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, rdr))

	raw := w.Body.String()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env), "body: %s", raw)
	return w.Code, env, raw
}

func create(t *testing.T, h http.Handler, body string) models.Listing {
	t.Helper()
	code, env, raw := do(t, h, http.MethodPost, "/api/listings", body)
	require.Equal(t, http.StatusCreated, code, raw)
	var l models.Listing
	require.NoError(t, json.Unmarshal(env.Data, &l))
	return l
}

func TestCreateListing(t *testing.T) {
	_, h := setup(t)

	l := create(t, h, `{"user_id":"u1","title":"Daire","description":"Deniz manzaralı"}`)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "u1", l.UserID)
	require.NotNil(t, l.Description)
	assert.Equal(t, "Deniz manzaralı", *l.Description)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestCreateListing_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing title", `{"user_id":"u1"}`, "user_id and title required"},
		{"null user_id", `{"user_id":null,"title":"T"}`, "user_id and title required"},
		{"empty title", `{"user_id":"u1","title":""}`, "user_id and title required"},
		{"empty object", `{}`, "user_id and title required"},
		{"malformed json", `{"user_id":`, "Invalid JSON"},
		{"trailing garbage", `{"user_id":"u1","title":"T"} trailing`, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, h := setup(t)
			code, env, _ := do(t, h, http.MethodPost, "/api/listings", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.OK)
			assert.Equal(t, tt.wantMsg, env.Error)
			assert.Zero(t, repo.calls, "validation failures must not reach the store")
		})
	}
}

func TestListListings(t *testing.T) {
	_, h := setup(t)
	create(t, h, `{"user_id":"u1","title":"first"}`)
	create(t, h, `{"user_id":"u1","title":"second"}`)
	create(t, h, `{"user_id":"u1","title":"third"}`)
	create(t, h, `{"user_id":"u2","title":"other"}`)

	code, env, _ := do(t, h, http.MethodGet, "/api/listings?user_id=u1&limit=2", "")
	require.Equal(t, http.StatusOK, code)
	var rows []models.Listing
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "third", rows[0].Title)
	assert.Equal(t, "second", rows[1].Title)

	code, env, _ = do(t, h, http.MethodGet, "/api/listings?user_id=u1", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 3)
}

func TestListListings_EmptyIsArray(t *testing.T) {
	_, h := setup(t)

	code, _, raw := do(t, h, http.MethodGet, "/api/listings?user_id=nobody", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"data":[]}`, raw)
}

func TestListListings_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{"missing user_id", "", "user_id required"},
		{"empty user_id", "?user_id=", "user_id required"},
		{"bad limit", "?user_id=u1&limit=abc", "limit must be a positive integer"},
		{"zero limit", "?user_id=u1&limit=0", "limit must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, h := setup(t)
			code, env, _ := do(t, h, http.MethodGet, "/api/listings"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.wantMsg, env.Error)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestGetListing(t *testing.T) {
	_, h := setup(t)
	l := create(t, h, `{"user_id":"u1","title":"Daire"}`)

	code, env, _ := do(t, h, http.MethodGet, "/api/listings/"+l.ID, "")
	require.Equal(t, http.StatusOK, code)
	var got models.Listing
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, l.ID, got.ID)
	assert.Nil(t, got.Description)

	code, env, _ = do(t, h, http.MethodGet, "/api/listings/missing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.OK)
	assert.Equal(t, noRowsMessage, env.Error)
}

func TestUpdateListing(t *testing.T) {
	repo, h := setup(t)
	l := create(t, h, `{"user_id":"u1","title":"Daire","description":"eski"}`)
	path := "/api/listings/" + l.ID

	t.Run("null clears description only", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, path, `{"description":null,"user_id":"hijack"}`)
		require.Equal(t, http.StatusOK, code)
		var got models.Listing
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Nil(t, got.Description)
		assert.Equal(t, "Daire", got.Title)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("title change", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, path, `{"title":"Yeni"}`)
		require.Equal(t, http.StatusOK, code)
		var got models.Listing
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Yeni", got.Title)
	})

	t.Run("empty body returns current row", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, path, `{}`)
		require.Equal(t, http.StatusOK, code)
		var got models.Listing
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Yeni", got.Title)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, path, `{"title":""}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "title must not be empty", env.Error)
	})

	t.Run("malformed json", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, path, `not json`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid JSON", env.Error)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		before := repo.calls
		code, env, _ := do(t, h, http.MethodPut, path, `{"title":"x"} trailing`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid JSON", env.Error)
		assert.Equal(t, before, repo.calls, "rejected body must not reach the store")

		_, env, _ = do(t, h, http.MethodGet, path, "")
		var got models.Listing
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Yeni", got.Title)
	})

	t.Run("missing id", func(t *testing.T) {
		code, env, _ := do(t, h, http.MethodPut, "/api/listings/missing", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, noRowsMessage, env.Error)
	})
}

func TestDeleteListing(t *testing.T) {
	_, h := setup(t)
	l := create(t, h, `{"user_id":"u1","title":"Daire"}`)
	path := "/api/listings/" + l.ID

	for i := 0; i < 2; i++ {
		code, _, raw := do(t, h, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"ok":true}`, raw)
	}

	code, _, _ := do(t, h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStoreFailureIsForwardedVerbatim(t *testing.T) {
	repo, h := setup(t)
	repo.failure = &domain.StoreError{Op: "list", Code: "42501", Message: "permission denied for table user_listings"}

	code, env, _ := do(t, h, http.MethodGet, "/api/listings?user_id=u1", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "permission denied for table user_listings", env.Error)

	code, env, _ = do(t, h, http.MethodDelete, "/api/listings/x", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "permission denied for table user_listings", env.Error)
}

func TestClientDisconnectDoesNotCancelStoreCall(t *testing.T) {
	repo, h := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(`{"user_id":"u1","title":"T"}`)).WithContext(ctx)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.ctxErrs, 1)
	assert.NoError(t, repo.ctxErrs[0])
}
