package videourl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("should accept watch urls", func(t *testing.T) {
		assert.True(t, Validate("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
		assert.True(t, Validate("https://www.youtube.com/watch?v=ABC123&t=5"))
	})

	t.Run("should reject everything else", func(t *testing.T) {
		assert.False(t, Validate(""))
		assert.False(t, Validate("https://youtu.be/dQw4w9WgXcQ"))
		assert.False(t, Validate("http://www.youtube.com/watch?v=dQw4w9WgXcQ"))
		assert.False(t, Validate("https://www.youtube.com/playlist?list=xyz"))
		assert.False(t, Validate("not a url"))
	})
}

func TestVideoID(t *testing.T) {
	t.Run("should extract the id", func(t *testing.T) {
		assert.Equal(t, "dQw4w9WgXcQ", VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	})

	t.Run("should strip trailing query parameters", func(t *testing.T) {
		assert.Equal(t, "ABC123", VideoID("https://www.youtube.com/watch?v=ABC123&t=5"))
		assert.Equal(t, "ABC123", VideoID("https://www.youtube.com/watch?v=ABC123&list=xyz&index=2"))
	})

	t.Run("should return empty for invalid urls", func(t *testing.T) {
		assert.Equal(t, "", VideoID("https://youtu.be/ABC123"))
		assert.Equal(t, "", VideoID(""))
	})
}

func TestThumbnailURL(t *testing.T) {
	t.Run("should build the default thumbnail url", func(t *testing.T) {
		assert.Equal(t, "https://img.youtube.com/vi/ABC123/0.jpg", ThumbnailURL("ABC123"))
	})
}
