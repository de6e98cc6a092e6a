package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsaas/console/internal/shell"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, limit int) (*Server, http.Handler) {
	t.Helper()
	srv, err := NewServer(Config{SessionLimit: limit})
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Stop() })
	return srv, srv.Handler()
}

// client replays the session cookie like a browser would.
type client struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, path string, accept string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) layout() map[string]any {
	c.t.Helper()
	w := c.do(http.MethodGet, "/api/layout", "")
	require.Equal(c.t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func state(body map[string]any) (active string, collapsed bool) {
	st := body["state"].(map[string]any)
	return st["active"].(string), st["collapsed"].(bool)
}

func TestHealthEndpoint(t *testing.T) {
	_, h := newTestServer(t, 8)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 0, body["sessions"])
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	_, h := newTestServer(t, 8)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	// Gin returns 404 unless HandleMethodNotAllowed is set.
	assert.Contains(t, []int{http.StatusMethodNotAllowed, http.StatusNotFound}, w.Code)
}

func TestPage_InitialRender(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	w := c.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c.cookie, "first visit issues a session cookie")
	assert.True(t, c.cookie.HttpOnly)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Dashboard · MicroSaaS</title>")
	assert.Contains(t, body, ">MicroSaaS</div>")
	assert.Contains(t, body, "w-60")
	assert.Contains(t, body, `aria-label="Main navigation"`)
	assert.Contains(t, body, `aria-label="Toggle navigation menu"`)
	assert.Contains(t, body, `aria-label="User profile"`)
	assert.Contains(t, body, `aria-current="page"`)
	assert.Equal(t, 1, strings.Count(body, `aria-current="page"`))
	assert.Contains(t, body, "Welcome back! Here&#39;s what&#39;s happening with your business today.")
	assert.Contains(t, body, "$45,231")
	assert.Contains(t, body, "text-red-600 mt-1")
	assert.Contains(t, body, "Activity item 4")
	assert.Contains(t, body, `action="/overlay/dismiss"`, "overlay present while expanded")
	assert.Contains(t, body, `action="/nav/DataSources"`)
	assert.Contains(t, body, "<svg")
}

func TestActivate_FormPostRedirects(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}
	c.do(http.MethodGet, "/", "")

	w := c.do(http.MethodPost, "/nav/Settings", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	page := c.do(http.MethodGet, "/", "").Body.String()
	assert.Contains(t, page, "<h1 class=\"text-3xl font-bold text-slate-900 mb-2\">Settings</h1>")
	assert.Contains(t, page, "Customize your workspace and account preferences.")
	assert.Contains(t, page, "Account Settings")
	assert.Contains(t, page, "Quick Actions")
	assert.Contains(t, page, "Profile Settings")
	assert.Contains(t, page, "Billing")
	assert.Contains(t, page, "Security")
	assert.NotContains(t, page, "Revenue Overview")
}

func TestActivate_JSONClient(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	w := c.do(http.MethodPost, "/nav/DataSources", gin.MIMEJSON)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	active, collapsed := state(body)
	assert.Equal(t, "DataSources", active)
	assert.False(t, collapsed)
	page := body["page"].(map[string]any)
	assert.Equal(t, "Data Sources", page["title"])
}

func TestActivate_UnknownID(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	w := c.do(http.MethodPost, "/nav/Reports", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown navigation identifier")

	active, _ := state(c.layout())
	assert.Equal(t, "Dashboard", active)
}

func TestToggle_SidebarAndHeaderShareState(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	c.do(http.MethodPost, "/sidebar/toggle", "")
	_, collapsed := state(c.layout())
	require.True(t, collapsed)

	page := c.do(http.MethodGet, "/", "").Body.String()
	assert.Contains(t, page, "w-16")
	assert.NotContains(t, page, ">MicroSaaS</div>")
	assert.NotContains(t, page, `action="/overlay/dismiss"`)
	assert.Contains(t, page, `title="Data Sources"`)

	c.do(http.MethodPost, "/header/menu", "")
	_, collapsed = state(c.layout())
	assert.False(t, collapsed)
}

func TestOverlayDismiss(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	c.do(http.MethodPost, "/overlay/dismiss", "")
	body := c.layout()
	_, collapsed := state(body)
	assert.True(t, collapsed)
	assert.NotContains(t, body, "overlay")

	// Dismissing again is a no-op.
	c.do(http.MethodPost, "/overlay/dismiss", "")
	_, collapsed = state(c.layout())
	assert.True(t, collapsed)
}

func TestSessions_AreIsolated(t *testing.T) {
	_, h := newTestServer(t, 8)
	a := &client{t: t, h: h}
	b := &client{t: t, h: h}

	a.do(http.MethodPost, "/nav/Tools", "")
	b.do(http.MethodGet, "/", "")

	activeA, _ := state(a.layout())
	activeB, _ := state(b.layout())
	assert.Equal(t, "Tools", activeA)
	assert.Equal(t, "Dashboard", activeB)
}

func TestSessions_EvictedSessionRestarts(t *testing.T) {
	_, h := newTestServer(t, 1)
	a := &client{t: t, h: h}
	b := &client{t: t, h: h}

	a.do(http.MethodPost, "/nav/Tools", "")
	b.do(http.MethodGet, "/", "")

	active, _ := state(a.layout())
	assert.Equal(t, "Dashboard", active)
}

func TestSessions_ConcurrentToggles(t *testing.T) {
	srv, h := newTestServer(t, 8)
	c := &client{t: t, h: h}
	c.do(http.MethodGet, "/", "")
	cookie := c.cookie

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/sidebar/toggle", nil)
			req.AddCookie(cookie)
			h.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	sess, ok := srv.sessions.cache.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, uint64(n), sess.shell.Revision())
	assert.False(t, sess.shell.Collapsed(), "an even number of toggles")
}

func TestLayoutEndpoint_YAML(t *testing.T) {
	_, h := newTestServer(t, 8)
	c := &client{t: t, h: h}

	w := c.do(http.MethodGet, "/api/layout?format=yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/yaml")
	assert.Contains(t, w.Body.String(), "active: Dashboard")

	w = c.do(http.MethodGet, "/api/layout?format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewPageData_EveryPanel(t *testing.T) {
	for _, id := range shell.IDs() {
		data := newPageData(shell.Render(shell.Navigation(), shell.State{Active: id}))
		set := 0
		for _, ok := range []bool{data.Dashboard != nil, data.Feature != nil, data.Settings != nil} {
			if ok {
				set++
			}
		}
		assert.Equal(t, 1, set, "panel %s", id)
	}
}

func TestRevenueBars(t *testing.T) {
	bars := revenueBars([]shell.RevenuePoint{{Month: "Jan", Amount: 50}, {Month: "Feb", Amount: 100}})
	require.Len(t, bars, 2)
	assert.Equal(t, 50, bars[0].Percent)
	assert.Equal(t, 100, bars[1].Percent)
	assert.Empty(t, revenueBars(nil))
}

func TestStartStop(t *testing.T) {
	srv, err := NewServer(Config{Addr: "127.0.0.1:0"})
	require.NoError(t, err)
	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop())
}
