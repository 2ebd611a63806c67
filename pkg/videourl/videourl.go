// Package videourl validates YouTube watch URLs and extracts video ids.
package videourl

import "strings"

const watchPrefix = "https://www.youtube.com/watch?v="

// Validate reports whether url is a YouTube watch URL in the accepted format.
func Validate(url string) bool {
	return strings.HasPrefix(url, watchPrefix)
}

// VideoID extracts the video id from a watch URL, stripping any query
// parameters after the first &. Returns "" for invalid URLs.
func VideoID(url string) string {
	if !Validate(url) {
		return ""
	}
	id := strings.TrimPrefix(url, watchPrefix)
	if i := strings.Index(id, "&"); i >= 0 {
		id = id[:i]
	}
	return id
}

// ThumbnailURL returns the default thumbnail for a video id.
func ThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/0.jpg"
}
