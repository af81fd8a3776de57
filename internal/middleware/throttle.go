package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// LeadThrottle limits guest-visit form submissions per client IP with a
// fixed one-minute window counted in Redis, so the public lead endpoint
// cannot be used to flood the backend with junk leads. A nil Redis client
// disables the limit (single-instance dev setups lose nothing important).
func LeadThrottle(rdb *redis.Client, perMinute int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || perMinute <= 0 {
				return next(c)
			}
			ctx := c.Request().Context()
			window := time.Now().UTC().Format("200601021504")
			key := fmt.Sprintf("lead:rl:%s:%s", c.RealIP(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis trouble must not take the form down.
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, 2*time.Minute).Err()
			}
			if n > int64(perMinute) {
				return c.Render(http.StatusTooManyRequests, "error.html", map[string]any{
					"Title":   "Слишком много заявок",
					"Message": "Слишком много заявок подряд. Подождите минуту и попробуйте ещё раз.",
				})
			}
			return next(c)
		}
	}
}
