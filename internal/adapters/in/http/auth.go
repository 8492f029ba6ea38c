package http

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	actorContextKey = "actor"
	apiKeyHeader    = "X-API-KEY"
)

// Authenticator verifies bearer tokens issued by the identity service and the
// static key used by the billing integration.
//
// Tokens are HMAC-signed and carry the claims sub (user id), email, name and role.
type Authenticator struct {
	secret     []byte
	apiKeyHash []byte
}

// NewAuthenticator builds an authenticator. An empty apiKeyHash disables API-key
// access.
func NewAuthenticator(jwtSecret, apiKeyHash string) *Authenticator {
	return &Authenticator{secret: []byte(jwtSecret), apiKeyHash: []byte(apiKeyHash)}
}

// RequireBearer admits requests with a valid bearer token.
func (a *Authenticator) RequireBearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := a.bearerActor(c)
			if err != nil {
				return err
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// RequireBearerOrAPIKey admits requests with a valid bearer token or the
// integration API key. API-key callers act as an anonymous BILLING user.
func (a *Authenticator) RequireBearerOrAPIKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key := c.Request().Header.Get(apiKeyHeader); key != "" {
				if len(a.apiKeyHash) == 0 ||
					bcrypt.CompareHashAndPassword(a.apiKeyHash, []byte(key)) != nil {
					return fmt.Errorf("%w: invalid API key", ErrUnauthorized)
				}
				c.Set(actorContextKey, access.Actor{Name: "API", Role: access.RoleBilling})
				return next(c)
			}

			actor, err := a.bearerActor(c)
			if err != nil {
				return err
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func (a *Authenticator) bearerActor(c echo.Context) (access.Actor, error) {
	tokenString := c.Request().Header.Get(echo.HeaderAuthorization)
	if tokenString == "" {
		return access.Actor{}, fmt.Errorf("%w: authorization header required", ErrUnauthorized)
	}
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "Bearer ") {
		tokenString = tokenString[7:]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return access.Actor{}, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Actor{}, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}
	actor, err := actorFromClaims(claims)
	if err != nil {
		return access.Actor{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return actor, nil
}

func actorFromClaims(claims jwt.MapClaims) (access.Actor, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return access.Actor{}, err
	}
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return access.Actor{}, err
	}

	roleClaim, _ := claims["role"].(string)
	role, err := access.ParseRole(roleClaim)
	if err != nil {
		return access.Actor{}, err
	}

	actor := access.Actor{UserID: userID, Role: role}
	actor.Name, _ = claims["name"].(string)
	if raw, _ := claims["email"].(string); raw != "" {
		if actor.Email, err = kernel.NewEmail(raw); err != nil {
			return access.Actor{}, err
		}
	}
	return actor, nil
}

// actorFrom returns the actor stored by the auth middleware.
func actorFrom(c echo.Context) access.Actor {
	actor, _ := c.Get(actorContextKey).(access.Actor)
	return actor
}
