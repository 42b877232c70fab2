package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapOrder(t *testing.T) {
	var order bytes.Buffer
	mark := func(s string) Middleware {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order.WriteString(s)
				h.ServeHTTP(w, r)
			})
		}
	}
	h := Wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order.WriteString("h")
	}), mark("a"), mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "bah", order.String())
}

func TestLogging(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/options?level=hard", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "handled request", entry.Message)
	assert.Equal(t, http.StatusTeapot, entry.Data["status_code"])
	assert.Equal(t, "/options?level=hard", entry.Data["uri"])
	assert.Equal(t, false, entry.Data["hijacked"])
}

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	request := func(origins []string, origin string) string {
		r := httptest.NewRequest("GET", "/options", nil)
		r.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		Cors(origins)(ok).ServeHTTP(w, r)
		return w.Header().Get("Access-Control-Allow-Origin")
	}

	assert.Equal(t, "http://a.test", request(nil, "http://a.test"))
	assert.Equal(t, "http://a.test", request([]string{"http://a.test"}, "http://a.test"))
	assert.Empty(t, request([]string{"http://a.test"}, "http://b.test"))
}
