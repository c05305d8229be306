package core

import "time"

// Cookie names for the mirrored credential entries.
const (
	CookieAccessToken  = "access_token"
	CookieIDToken      = "id_token"
	CookieRefreshToken = "refresh_token"
)

var mirrorCookies = []string{CookieAccessToken, CookieIDToken, CookieRefreshToken}

// CookieSink is the side channel the credential mirror writes to.
//
// Adapters are expected to URL-encode values and clear entries by writing an
// already-expired date, matching browser cookie semantics.
type CookieSink interface {
	SetCookie(name, value string, expires time.Time)
	ClearCookie(name string)
}

// MirrorConfig configures the credential mirror.
type MirrorConfig struct {
	// MaxAge bounds the mirrored entries' lifetime, independent of the
	// tokens' own expiry.
	MaxAge time.Duration
}

func DefaultMirrorConfig() MirrorConfig {
	return MirrorConfig{MaxAge: 24 * time.Hour}
}

// Mirror keeps a cookie channel synchronized with the session's credentials
// so non-script request paths (e.g. server-rendered pages) can read them.
//
// The mirror is a convenience cache, not a security boundary. Consumers must
// never treat a mirrored entry as sole proof of authentication.
type Mirror struct {
	sink   CookieSink
	maxAge time.Duration
}

func NewMirror(sink CookieSink, config MirrorConfig) *Mirror {
	maxAge := config.MaxAge
	if maxAge == 0 {
		maxAge = DefaultMirrorConfig().MaxAge
	}
	return &Mirror{sink: sink, maxAge: maxAge}
}

// Apply synchronizes the sink with the given session state.
//
// Authenticated: every credential present on the session is written; absent
// credentials are not written and previously mirrored values are left alone.
// Unauthenticated: all three entries are cleared unconditionally.
//
// Apply is idempotent - re-running the same transition produces the same
// end state.
func (m *Mirror) Apply(state SessionState) {
	if !state.Authenticated {
		for _, name := range mirrorCookies {
			m.sink.ClearCookie(name)
		}
		return
	}

	expires := time.Now().Add(m.maxAge)

	if v := state.Credentials.AccessToken; v != "" {
		m.sink.SetCookie(CookieAccessToken, v, expires)
	}
	if v := state.Credentials.IDToken; v != "" {
		m.sink.SetCookie(CookieIDToken, v, expires)
	}
	if v := state.Credentials.RefreshToken; v != "" {
		m.sink.SetCookie(CookieRefreshToken, v, expires)
	}
}
