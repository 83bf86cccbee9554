package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"geometa/internal/auth"
	"geometa/internal/hypermedia"
	"geometa/internal/model"
)

const resourceKeyCtx = "cache_resource"

// ResponseStore keeps rendered representations per resource.
type ResponseStore interface {
	GetField(ctx context.Context, key, field string) ([]byte, bool)
	SetField(ctx context.Context, key, field string, value []byte)
}

// SetResourceKey names the resource a request renders. Resolvers call it
// so the cache can file the response under that resource.
func SetResourceKey(c echo.Context, key string) {
	c.Set(resourceKeyCtx, key)
}

func resourceKey(c echo.Context) string {
	key, _ := c.Get(resourceKeyCtx).(string)
	return key
}

// variant distinguishes representations of one resource by caller; field
// visibility and controls depend on who is asking.
func variant(u *model.User) string {
	if u == nil {
		return "anon"
	}
	return fmt.Sprintf("user:%d:%s:%s", u.ID, u.Username, u.Role)
}

// captureWriter copies the response body while forwarding it to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// ResponseCache serves GETs of a resolved resource from store. Only 200
// responses are stored; mutations invalidate the resource's whole hash.
func ResponseCache(store ResponseStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := resourceKey(c)
			if store == nil || key == "" || c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			field := c.Request().URL.RequestURI() + "|" + variant(auth.Caller(c))

			if body, ok := store.GetField(ctx, key, field); ok {
				CacheLookups.WithLabelValues("hit").Inc()
				c.Response().Header().Set("X-Cache", "HIT")
				return c.Blob(http.StatusOK, hypermedia.MediaType, body)
			}
			CacheLookups.WithLabelValues("miss").Inc()

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK {
				store.SetField(ctx, key, field, cw.buf.Bytes())
			}
			return nil
		}
	}
}
