// Package transcript maps playback time onto timestamped transcript segments.
package transcript

import (
	"fmt"
	"strings"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

// ActiveIndex returns the index of the single segment whose interval contains
// the current playback time, or -1 when none does. A segment's interval runs
// from its start to the next segment's start; the last segment's runs to
// start+duration. Before the first start or past the end, nothing is active.
func ActiveIndex(segments []api.TranscriptSegment, currentTime float64) int {
	for i, seg := range segments {
		end := seg.Start + seg.Duration
		if i+1 < len(segments) {
			end = segments[i+1].Start
		}
		if currentTime >= seg.Start && currentTime < end {
			return i
		}
	}
	return -1
}

// FormatStart renders a segment start as HH:MM:SS.
func FormatStart(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Join flattens segments into plain transcript text, used when the backend
// omits the pre-joined transcript field.
func Join(segments []api.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}
