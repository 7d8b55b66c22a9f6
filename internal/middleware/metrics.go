package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
)

type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

func Metrics(obs RequestObserver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
