package cdn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	locator := NewLocator("https://cdn.example.com")

	t.Run("empty input passes through", func(t *testing.T) {
		assert.Equal(t, "", locator.PublicURL(""))
		assert.Nil(t, locator.PublicURLPtr(""))
	})

	t.Run("rewrites the origin and keeps the path", func(t *testing.T) {
		got := locator.PublicURL("https://storage.internal:9000/bucket/2024/01/02/abc.jpg")
		assert.Equal(t, "https://cdn.example.com/bucket/2024/01/02/abc.jpg", got)
	})

	t.Run("keeps the query string", func(t *testing.T) {
		got := locator.PublicURL("http://storage.internal/bucket/a.png?v=2")
		assert.Equal(t, "https://cdn.example.com/bucket/a.png?v=2", got)
	})

	t.Run("idempotent on already rewritten URLs", func(t *testing.T) {
		raw := "https://storage.internal/bucket/photo.jpg"
		once := locator.PublicURL(raw)
		assert.Equal(t, once, locator.PublicURL(once))
	})

	t.Run("prefixes bare object keys", func(t *testing.T) {
		got := locator.PublicURL("bucket/photo.jpg")
		assert.Equal(t, "https://cdn.example.com/bucket/photo.jpg", got)
	})

	t.Run("trailing slash on the base is trimmed", func(t *testing.T) {
		l := NewLocator("https://cdn.example.com/")
		assert.Equal(t, "https://cdn.example.com/b/k.jpg", l.PublicURL("https://s.internal/b/k.jpg"))
	})
}
