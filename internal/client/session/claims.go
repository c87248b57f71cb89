package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is display data carried by a JWT credential.
type Claims struct {
	Username string
	// IsAdmin is nil when the token does not say.
	IsAdmin *bool
}

// ParseClaims decodes a JWT payload without verifying its signature. The
// result is for display only; the backend stays the authority on what the
// token allows. ok is false for tokens that are not JWTs.
func ParseClaims(token string) (Claims, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	var c Claims
	if v, ok := mc["username"].(string); ok {
		c.Username = v
	} else if sub, err := mc.GetSubject(); err == nil {
		c.Username = sub
	}
	for _, key := range []string{"isAdmin", "is_admin"} {
		if v, ok := mc[key].(bool); ok {
			c.IsAdmin = &v
			break
		}
	}
	return c, true
}
