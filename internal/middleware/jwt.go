package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"housing-service/internal/model"
)

const callerKey = "caller"

// Authenticate resolves the Caller once per request. Requests without a
// bearer token continue as anonymous; a token that fails verification is
// rejected with 401.
func Authenticate(secret, alg string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set(callerKey, model.Anonymous)
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		}, jwt.WithValidMethods([]string{alg}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid claims"})
			return
		}
		caller, ok := callerFromClaims(claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "token has no subject"})
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller resolved by Authenticate, anonymous when absent.
func CallerFrom(c *gin.Context) model.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(model.Caller); ok {
			return caller
		}
	}
	return model.Anonymous
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerFrom(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication credentials were not provided"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed with 403.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if !caller.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication credentials were not provided"})
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "you do not have permission to perform this action"})
	}
}

func callerFromClaims(claims jwt.MapClaims) (model.Caller, bool) {
	userID, ok := claimID(claims["sub"])
	if !ok {
		return model.Anonymous, false
	}
	caller := model.Caller{UserID: userID, Role: roleFromClaims(claims["roles"])}

	switch caller.Role {
	case model.RoleOwner:
		caller.OwnerID = userID
		if id, ok := claimID(claims["owner_id"]); ok {
			caller.OwnerID = id
		}
	case model.RoleStudent:
		caller.StudentID = userID
		if id, ok := claimID(claims["student_id"]); ok {
			caller.StudentID = id
		}
	}
	return caller, true
}

// roleFromClaims picks the strongest role listed: ADMIN, then OWNER, then STUDENT.
// A token without a known role is treated as a student.
func roleFromClaims(raw interface{}) model.Role {
	var names []string
	switch roles := raw.(type) {
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
	case []string:
		names = roles
	case string:
		names = strings.Split(roles, ",")
	}

	role := model.RoleStudent
	for _, n := range names {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "ADMIN":
			return model.RoleAdmin
		case "OWNER":
			role = model.RoleOwner
		}
	}
	return role
}

func claimID(v interface{}) (int64, bool) {
	switch id := v.(type) {
	case float64:
		if id > 0 {
			return int64(id), true
		}
	case string:
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}
