package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

func TestActiveIndex(t *testing.T) {
	segments := []api.TranscriptSegment{
		{Text: "intro", Start: 0, Duration: 5},
		{Text: "middle", Start: 5, Duration: 5},
		{Text: "end", Start: 10, Duration: 5},
	}

	t.Run("should select the segment containing the current time", func(t *testing.T) {
		assert.Equal(t, 0, ActiveIndex(segments, 0))
		assert.Equal(t, 0, ActiveIndex(segments, 4.9))
		assert.Equal(t, 1, ActiveIndex(segments, 5))
		assert.Equal(t, 1, ActiveIndex(segments, 7))
		assert.Equal(t, 2, ActiveIndex(segments, 10))
	})

	t.Run("should return -1 past the last segment", func(t *testing.T) {
		assert.Equal(t, 2, ActiveIndex(segments, 14.9))
		assert.Equal(t, -1, ActiveIndex(segments, 15))
		assert.Equal(t, -1, ActiveIndex(segments, 100))
	})

	t.Run("should return -1 before the first segment", func(t *testing.T) {
		offset := []api.TranscriptSegment{
			{Text: "late start", Start: 3, Duration: 5},
		}
		assert.Equal(t, -1, ActiveIndex(offset, 1))
		assert.Equal(t, 0, ActiveIndex(offset, 3))
	})

	t.Run("should bridge gaps between segments to the next start", func(t *testing.T) {
		gapped := []api.TranscriptSegment{
			{Text: "a", Start: 0, Duration: 2},
			{Text: "b", Start: 10, Duration: 2},
		}
		// The first segment's interval runs to the next start, past its
		// own duration.
		assert.Equal(t, 0, ActiveIndex(gapped, 6))
		assert.Equal(t, 1, ActiveIndex(gapped, 10))
		assert.Equal(t, -1, ActiveIndex(gapped, 12))
	})

	t.Run("should handle empty segments", func(t *testing.T) {
		assert.Equal(t, -1, ActiveIndex(nil, 5))
	})
}

func TestFormatStart(t *testing.T) {
	t.Run("should render as HH:MM:SS", func(t *testing.T) {
		assert.Equal(t, "00:00:00", FormatStart(0))
		assert.Equal(t, "00:00:07", FormatStart(7.4))
		assert.Equal(t, "00:02:05", FormatStart(125))
		assert.Equal(t, "01:01:01", FormatStart(3661))
		assert.Equal(t, "10:00:00", FormatStart(36000))
	})
}

func TestJoin(t *testing.T) {
	t.Run("should flatten segment text", func(t *testing.T) {
		segments := []api.TranscriptSegment{
			{Text: "hello", Start: 0, Duration: 2},
			{Text: "", Start: 2, Duration: 1},
			{Text: "world", Start: 3, Duration: 2},
		}
		assert.Equal(t, "hello world", Join(segments))
	})

	t.Run("should handle empty input", func(t *testing.T) {
		assert.Equal(t, "", Join(nil))
	})
}
