// internal/middleware/helpers.go
package middleware

import (
	"hopegivers-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// GetRecord gets the session record from context
func GetRecord(c *gin.Context) (*session.Record, bool) {
	v, exists := c.Get("session")
	if !exists {
		return nil, false
	}

	rec, ok := v.(*session.Record)
	if !ok {
		return nil, false
	}
	return rec, true
}

// MustGetRecord gets the session record from context or panics
func MustGetRecord(c *gin.Context) *session.Record {
	rec, exists := GetRecord(c)
	if !exists {
		panic("session not found in context")
	}
	return rec
}

// GetUserName gets the signed-in user name from context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}

	s, ok := name.(string)
	if !ok {
		return ""
	}
	return s
}

// GetToken gets the backend bearer token from context
func GetToken(c *gin.Context) string {
	token, exists := c.Get("token")
	if !exists {
		return ""
	}

	s, ok := token.(string)
	if !ok {
		return ""
	}
	return s
}

// GetRoles gets the session roles from context
func GetRoles(c *gin.Context) session.RoleList {
	roles, exists := c.Get("roles")
	if !exists {
		return session.RoleList{}
	}

	list, ok := roles.(session.RoleList)
	if !ok {
		return session.RoleList{}
	}
	return list
}

// IsAuthenticated checks if request carries a live session
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("session")
	return exists
}

// IsAdmin checks if the session holds the admin role
func IsAdmin(c *gin.Context) bool {
	return GetRoles(c).Has(session.RoleAdmin)
}
