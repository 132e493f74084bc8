// Package identity resolves the current user for a request.
//
// Authentication itself happens outside of this backend: the fronting
// auth proxy verifies the session and passes the verified identity in
// request headers. Every store operation is scoped to the resolved
// user, so requests without a resolvable user are rejected before any
// database access.
package identity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Headers set by the auth proxy.
const (
	HeaderUser  = "X-Auth-Request-User"
	HeaderEmail = "X-Auth-Request-Email"
)

const contextKey = "gargantua-user"

var ErrNoUser = errors.New("no authenticated user for this request")

// User is the resolved identity of the requester.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Middleware resolves the user from the proxy headers and aborts
// with 401 when there is none.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderUser))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoUser.Error()})
			return
		}

		c.Set(contextKey, User{
			ID:    id,
			Email: c.GetHeader(HeaderEmail),
		})
		c.Next()
	}
}

// FromContext returns the user resolved by the Middleware.
func FromContext(c *gin.Context) (User, error) {
	value, ok := c.Get(contextKey)
	if !ok {
		return User{}, ErrNoUser
	}

	user, ok := value.(User)
	if !ok {
		return User{}, ErrNoUser
	}

	return user, nil
}
