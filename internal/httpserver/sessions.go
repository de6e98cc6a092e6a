package httpserver

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/microsaas/console/internal/shell"
)

const sessionCookie = "microsaas_session"

// session is one browser's shell state. The shell itself is not safe for
// concurrent use, so every access goes through mu.
type session struct {
	mu    sync.Mutex
	shell *shell.Shell
}

// apply runs fn against the shell and returns the resulting layout.
func (s *session) apply(fn func(*shell.Shell)) shell.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		fn(s.shell)
	}
	return s.shell.Layout()
}

// sessionStore keeps the most recently used sessions. Evicted browsers
// start again from the initial state.
type sessionStore struct {
	cache *lru.Cache[string, *session]
}

func newSessionStore(limit int) (*sessionStore, error) {
	cache, err := lru.New[string, *session](limit)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &sessionStore{cache: cache}, nil
}

// get returns the caller's session, issuing a new cookie when the request
// carries none or an unknown one.
func (st *sessionStore) get(c *gin.Context) *session {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := st.cache.Get(id); ok {
			return sess
		}
	}

	id := uuid.NewString()
	sess := &session{shell: shell.New()}
	st.cache.Add(id, sess)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return sess
}

func (st *sessionStore) len() int {
	return st.cache.Len()
}
