// Package session keeps web session state in a signed cookie.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/clicker/internal/logger"
)

// CookieName is the name of the session cookie.
const CookieName = "clicker_session"

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Data is the state carried by the session cookie.
type Data struct {
	UserID      int64   `json:"uid,omitempty"`
	Username    string  `json:"usr,omitempty"`
	IsAdmin     bool    `json:"adm,omitempty"`
	Incremented bool    `json:"inc,omitempty"` // one-shot increment flag, cleared on index render
	Flashes     []Flash `json:"fl,omitempty"`
}

// LoggedIn reports whether the session carries a user.
func (d *Data) LoggedIn() bool {
	return d.UserID != 0
}

// AddFlash queues a message for the next page.
func (d *Data) AddFlash(category, message string) {
	d.Flashes = append(d.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns and clears the queued messages.
func (d *Data) PopFlashes() []Flash {
	flashes := d.Flashes
	d.Flashes = nil
	return flashes
}

// Logout drops the user identity and keeps pending flashes.
func (d *Data) Logout() {
	*d = Data{Flashes: d.Flashes}
}

type claims struct {
	Data
	jwt.RegisteredClaims
}

// Store signs and verifies session cookies with an HMAC key.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewStore creates a new Store. secure marks cookies HTTPS-only.
func NewStore(secret string, ttl time.Duration, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Load returns the session of the request. A missing, tampered or expired
// cookie yields an empty session.
func (s *Store) Load(r *http.Request) *Data {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return &Data{}
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		logger.Log.Infow("discarding session cookie", "error", err)
		return &Data{}
	}

	return &c.Data
}

// Save writes the session cookie to the response.
func (s *Store) Save(w http.ResponseWriter, d *Data) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Data: *d,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	value, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
