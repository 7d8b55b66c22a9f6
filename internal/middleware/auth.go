package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const UserIDKey = "userId"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

// BearerAuth rejects requests without a live session and stores the
// caller's id under UserIDKey.
func BearerAuth(sessions SessionResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			token = ""
		}

		userID, err := sessions.Resolve(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func UserID(c *ginext.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
