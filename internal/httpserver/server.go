// Package httpserver serves the console shell as a server-rendered web page
// with a small JSON API.
package httpserver

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/microsaas/console/internal/shell"
)

// Config configures a Server.
type Config struct {
	Addr         string
	SessionLimit int
	Logger       *zap.Logger
}

// Server serves the shell over HTTP, one state per browser session.
type Server struct {
	addr      string
	sessions  *sessionStore
	page      *template.Template
	logger    *zap.Logger
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP server.
func NewServer(cfg Config) (*Server, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	limit := cfg.SessionLimit
	if limit <= 0 {
		limit = 1024
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sessions, err := newSessionStore(limit)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		sessions:  sessions,
		page:      newPageTemplate(),
		logger:    logger.Named("http"),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}, nil
}

// Handler returns the router serving every route.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(s.page)

	r.GET("/", s.handlePage)
	r.POST("/nav/:id", s.handleActivate)
	r.POST("/sidebar/toggle", s.handleToggle)
	r.POST("/header/menu", s.handleToggle)
	r.POST("/overlay/dismiss", s.handleDismiss)

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/layout", s.handleLayout)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()
	s.logger.Info("listening", zap.String("addr", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePage(c *gin.Context) {
	layout := s.sessions.get(c).apply(nil)
	c.HTML(http.StatusOK, pageTemplateName, newPageData(layout))
}

func (s *Server) handleActivate(c *gin.Context) {
	id, err := shell.ParseNavID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	layout := s.sessions.get(c).apply(func(sh *shell.Shell) { sh.Activate(id) })
	s.respond(c, layout)
}

func (s *Server) handleToggle(c *gin.Context) {
	layout := s.sessions.get(c).apply(func(sh *shell.Shell) { sh.ToggleCollapse() })
	s.respond(c, layout)
}

func (s *Server) handleDismiss(c *gin.Context) {
	layout := s.sessions.get(c).apply(func(sh *shell.Shell) { sh.DismissOverlay() })
	s.respond(c, layout)
}

// respond sends the new layout to API clients and redirects form posts
// back to the page.
func (s *Server) respond(c *gin.Context, layout shell.Layout) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, layout)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"sessions": s.sessions.len(),
	})
}

func (s *Server) handleLayout(c *gin.Context) {
	layout := s.sessions.get(c).apply(nil)

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, layout)
	case "yaml":
		out, err := yaml.Marshal(layout)
		if err != nil {
			s.logger.Error("encode layout", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode layout"})
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or yaml"})
	}
}
