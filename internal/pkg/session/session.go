package session

import (
	"encoding/gob"

	"github.com/gorilla/sessions"
	contrib "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/agrimart/agrimart/internal/pkg/models"
)

const sessionName = "agrimart_session"

// Session value keys. pending_login and login_type mark an outstanding OTP
// challenge; user_id, user_email and user_phone mark an established login.
const (
	keyPendingLogin = "pending_login"
	keyLoginType    = "login_type"
	keyUserID       = "user_id"
	keyUserEmail    = "user_email"
	keyUserPhone    = "user_phone"
)

// Flash levels rendered by the views
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Flash is a one-shot message shown on the next rendered page
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Middleware returns the cookie-session middleware backed by the configured
// secret.
func Middleware(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	return contrib.Middleware(store)
}

func current(c echo.Context) (*sessions.Session, error) {
	return contrib.Get(sessionName, c)
}

func save(c echo.Context, s *sessions.Session) error {
	return s.Save(c.Request(), c.Response())
}

// AddFlash queues a one-shot message for the next rendered page
func AddFlash(c echo.Context, level, message string) {
	s, err := current(c)
	if err != nil {
		return
	}
	s.AddFlash(Flash{Level: level, Message: message})
	_ = save(c, s)
}

// Flashes drains and returns the queued flash messages
func Flashes(c echo.Context) []Flash {
	s, err := current(c)
	if err != nil {
		return nil
	}

	raw := s.Flashes()
	if len(raw) > 0 {
		_ = save(c, s)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// SetPendingLogin marks an outstanding OTP challenge for the identifier
func SetPendingLogin(c echo.Context, identifier, loginType string) error {
	s, err := current(c)
	if err != nil {
		return err
	}
	s.Values[keyPendingLogin] = identifier
	s.Values[keyLoginType] = loginType
	return save(c, s)
}

// PendingLogin returns the challenge marker set by SetPendingLogin
func PendingLogin(c echo.Context) (identifier, loginType string, ok bool) {
	s, err := current(c)
	if err != nil {
		return "", "", false
	}
	identifier, ok = s.Values[keyPendingLogin].(string)
	if !ok || identifier == "" {
		return "", "", false
	}
	loginType, _ = s.Values[keyLoginType].(string)
	return identifier, loginType, true
}

// EstablishLogin populates the session with the verified user's identity and
// removes the pending-login markers.
func EstablishLogin(c echo.Context, user *models.User) error {
	s, err := current(c)
	if err != nil {
		return err
	}
	s.Values[keyUserID] = user.ID
	s.Values[keyUserEmail] = user.Email
	s.Values[keyUserPhone] = user.Phone
	delete(s.Values, keyPendingLogin)
	delete(s.Values, keyLoginType)
	return save(c, s)
}

// UserID returns the logged-in user's id, if any
func UserID(c echo.Context) (int, bool) {
	s, err := current(c)
	if err != nil {
		return 0, false
	}
	id, ok := s.Values[keyUserID].(int)
	return id, ok
}

// Clear wipes the whole session
func Clear(c echo.Context) error {
	s, err := current(c)
	if err != nil {
		return err
	}
	for k := range s.Values {
		delete(s.Values, k)
	}
	return save(c, s)
}
