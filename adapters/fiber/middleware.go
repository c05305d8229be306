package fiber

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/taskgate/taskgate"
	"github.com/taskgate/taskgate/core"
)

// Headers carrying the non-identity credentials when the client supplies
// them explicitly instead of relying on previously mirrored cookies.
const (
	headerAccessToken  = "X-Access-Token"
	headerRefreshToken = "X-Refresh-Token"
)

// sessionMiddleware resolves the caller's session and synchronizes the
// credential mirror cookies, then stores the resolved session in the
// context for downstream handlers.
func (a *Adapter) sessionMiddleware(tg *taskgate.Taskgate) fiber.Handler {
	return func(c fiber.Ctx) error {
		state := sessionStateFrom(c)

		session := tg.Resolve(state)
		tg.MirrorFor(&cookieSink{ctx: c}).Apply(state)

		c.Locals("session", session)

		return c.Next()
	}
}

// sessionStateFrom reconstructs the provider's session state from the
// request. The identity token travels as a bearer token; access and refresh
// tokens come from explicit headers or from the cookies a previous response
// mirrored.
func sessionStateFrom(c fiber.Ctx) taskgate.SessionState {
	creds := taskgate.Credentials{
		IDToken:      extractToken(c),
		AccessToken:  c.Get(headerAccessToken),
		RefreshToken: c.Get(headerRefreshToken),
	}

	if creds.IDToken == "" {
		creds.IDToken = cookieValue(c, core.CookieIDToken)
	}
	if creds.AccessToken == "" {
		creds.AccessToken = cookieValue(c, core.CookieAccessToken)
	}
	if creds.RefreshToken == "" {
		creds.RefreshToken = cookieValue(c, core.CookieRefreshToken)
	}

	return taskgate.SessionState{
		Authenticated: creds.IDToken != "" || creds.AccessToken != "",
		Credentials:   creds,
	}
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func cookieValue(c fiber.Ctx, name string) string {
	raw := c.Cookies(name)
	if raw == "" {
		return ""
	}

	value, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return value
}

// cookieSink writes mirror entries as cookies on the response.
type cookieSink struct {
	ctx fiber.Ctx
}

var _ core.CookieSink = (*cookieSink)(nil)

func (s *cookieSink) SetCookie(name, value string, expires time.Time) {
	s.ctx.Cookie(&fiber.Cookie{
		Name:    name,
		Value:   url.QueryEscape(value),
		Expires: expires,
		Path:    "/",
	})
}

// ClearCookie writes an already-expired date, the cookie-channel way of
// deleting an entry.
func (s *cookieSink) ClearCookie(name string) {
	s.ctx.Cookie(&fiber.Cookie{
		Name:    name,
		Value:   "",
		Expires: time.Unix(0, 0),
		Path:    "/",
	})
}
