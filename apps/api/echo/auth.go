package echoapi

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/rapor/core"
)

const (
	contextTokenKey  = "token"
	contextClaimsKey = "claims"
	bearerPrefix     = "Bearer "
)

// Claims are the parts of the school API's JWT we rely on.
// The token is issued and verified by the school API: here it only identifies the caller.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (c Claims) person() core.Person {
	return core.Person{ID: c.Subject, Username: c.Username, Email: c.Email}
}

func parseClaims(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errUnauthorized
	}
	return claims, nil
}

// bearerMiddleware requires a bearer JWT, and keeps it along with its claims in the echo.Context.
func bearerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(auth, bearerPrefix) {
			return errUnauthorized
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix))
		claims, err := parseClaims(token)
		if err != nil {
			return errUnauthorized
		}
		ctx.Set(contextTokenKey, token)
		ctx.Set(contextClaimsKey, claims)
		return next(ctx)
	}
}

func contextToken(ctx echo.Context) string {
	token, _ := ctx.Get(contextTokenKey).(string)
	return token
}

// contextOwner identifies the owner of the grade sheets opened in this request.
func contextOwner(ctx echo.Context) string {
	if claims, ok := ctx.Get(contextClaimsKey).(*Claims); ok {
		return claims.Subject
	}
	return ""
}

func contextPerson(ctx echo.Context) core.Person {
	if claims, ok := ctx.Get(contextClaimsKey).(*Claims); ok {
		return claims.person()
	}
	return core.Person{}
}
