package session

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/services"
)

const (
	cookieName = "cursos-session"
	tokenKey   = "token"
	contextKey = "session"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Authenticator is the part of the API used to establish sessions
type Authenticator interface {
	Me(ctx context.Context, token string) (models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req services.RegisterRequest) (string, error)
}

// CurrentUser is the capability of reading who is signed in
type CurrentUser interface {
	User() (models.User, bool)
	Token() string
}

// Session is the per-request view of the signed-in user
type Session struct {
	token string
	user  *models.User
}

// User returns the signed-in user, if any
func (s *Session) User() (models.User, bool) {
	if s == nil || s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the API bearer token, empty when anonymous
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// Authenticated reports whether a user is signed in
func (s *Session) Authenticated() bool {
	_, ok := s.User()
	return ok
}

// Manager owns the session lifecycle: Init on each request, Login/Register to
// start a session and Teardown on logout
type Manager struct {
	store sessions.Store
	auth  Authenticator
}

// NewCookieStore creates the signed cookie store holding the API token
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 5,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// NewManager creates a Manager
func NewManager(store sessions.Store, auth Authenticator) *Manager {
	return &Manager{store: store, auth: auth}
}

func (m *Manager) cookie(c echo.Context) *sessions.Session {
	// Get only fails on a tampered or stale cookie; it still returns a fresh session
	sess, _ := m.store.Get(c.Request(), cookieName)
	return sess
}

// Init loads the session for the request and stores it in the echo context.
// A token rejected by the API is dropped so the request continues anonymous.
func (m *Manager) Init(c echo.Context) (*Session, error) {
	s := &Session{}
	defer func() {
		c.Set(contextKey, s)
		if u, ok := s.User(); ok {
			c.Set("userEmail", u.Email)
			c.Set("userUID", u.ID)
		}
	}()

	sess := m.cookie(c)
	token, _ := sess.Values[tokenKey].(string)
	if token == "" {
		return s, nil
	}

	user, err := m.auth.Me(c.Request().Context(), token)
	if err != nil {
		if services.IsUnauthorized(err) {
			return s, m.Teardown(c)
		}
		return s, err
	}

	s.token = token
	s.user = &user
	return s, nil
}

// Login authenticates against the API and persists the token
func (m *Manager) Login(c echo.Context, email, password string) (*Session, error) {
	token, err := m.auth.Login(c.Request().Context(), email, password)
	if err != nil {
		return nil, err
	}
	return m.start(c, token)
}

// Register creates the account and starts its session
func (m *Manager) Register(c echo.Context, req services.RegisterRequest) (*Session, error) {
	token, err := m.auth.Register(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return m.start(c, token)
}

func (m *Manager) start(c echo.Context, token string) (*Session, error) {
	user, err := m.auth.Me(c.Request().Context(), token)
	if err != nil {
		return nil, err
	}

	sess := m.cookie(c)
	sess.Values[tokenKey] = token
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, err
	}

	s := &Session{token: token, user: &user}
	c.Set(contextKey, s)
	return s, nil
}

// Teardown forgets the token and expires the cookie
func (m *Manager) Teardown(c echo.Context) error {
	sess := m.cookie(c)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	c.Set(contextKey, &Session{})
	return sess.Save(c.Request(), c.Response())
}

// AddFlash queues a one-shot notification for the next rendered page
func (m *Manager) AddFlash(c echo.Context, kind, message string) {
	sess := m.cookie(c)
	sess.AddFlash(message, kind)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Errorf("failed to save flash: %v", err)
	}
}

// Flashes pops the pending notifications of kind
func (m *Manager) Flashes(c echo.Context, kind string) []string {
	sess := m.cookie(c)
	raw := sess.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Errorf("failed to save session after reading flashes: %v", err)
	}

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// FromContext returns the session loaded by Init, or an anonymous one
func FromContext(c echo.Context) *Session {
	if s, ok := c.Get(contextKey).(*Session); ok {
		return s
	}
	return &Session{}
}
