package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/egonzalezhe/techflow/internal/auth"
	dom "github.com/egonzalezhe/techflow/internal/domain"
	"github.com/egonzalezhe/techflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// fakeServiceRepo is an in-memory repo.ServiceRepo.
type fakeServiceRepo struct {
	rows   map[int64]dom.Service
	nextID int64
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{rows: map[int64]dom.Service{}, nextID: 1}
}

func (f *fakeServiceRepo) List(_ context.Context) ([]dom.Service, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]dom.Service, 0, len(ids))
	for _, id := range ids {
		list = append(list, f.rows[id])
	}
	return list, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (dom.Service, error) {
	s, ok := f.rows[id]
	if !ok {
		return dom.Service{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, s dom.Service) (dom.Service, error) {
	s.ID = f.nextID
	f.nextID++
	f.rows[s.ID] = s
	return s, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

// fakeSessions implements both auth.SessionReader and SessionManager.
type fakeSessions struct {
	sessions map[string]auth.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]auth.Session{}}
}

func (f *fakeSessions) Get(_ context.Context, id string) (auth.Session, bool) {
	s, ok := f.sessions[id]
	return s, ok
}

func (f *fakeSessions) Create(_ context.Context, userID int64, username string) (string, error) {
	id := "sess-" + username
	f.sessions[id] = auth.Session{UserID: userID, Username: username}
	return id, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) TTL() time.Duration { return time.Hour }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	return r
}

func seedRepo(t *testing.T, repo *fakeServiceRepo, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repo.Create(context.Background(), dom.Service{
			Name: name, Price: 1000, Stock: 2, Icon: service.DefaultIcon,
		})
		require.NoError(t, err)
	}
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}
