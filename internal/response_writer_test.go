package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("first WriteHeader wins", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec)

		assert.False(t, rw.Written())
		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusInternalServerError)

		assert.True(t, rw.Written())
		assert.Equal(t, http.StatusNotFound, rw.Status())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("write implies 200", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		rw := NewResponseWriter(rec)

		n, err := rw.Write([]byte("hello"))
		assert.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, int64(5), rw.Size())
		assert.Equal(t, http.StatusOK, rw.Status())
		assert.True(t, rw.Written())
	})

	t.Run("nested writers share written state upward", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		outer := NewResponseWriter(rec)
		inner := NewResponseWriter(outer)

		inner.WriteHeader(http.StatusAccepted)

		assert.True(t, outer.Written())
		assert.Equal(t, http.StatusAccepted, outer.Status())
		assert.Same(t, outer, inner.Unwrap())
	})
}
