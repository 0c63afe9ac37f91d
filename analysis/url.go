// Package analysis holds the pure pieces of the post processing flow: input
// validation, progress rendering, and report generation.
package analysis

import "regexp"

// postURLPattern matches VK wall post links such as
// https://vk.com/wall-123456789_1234, with optional scheme variations,
// optional www, and an optional trailing path.
var postURLPattern = regexp.MustCompile(`^https?://(www\.)?vk\.com/wall-?\d+_\d+(/.*)?$`)

// IsPostURL reports whether text is a well-formed VK wall post link.
// The caller is expected to trim surrounding whitespace first.
func IsPostURL(text string) bool {
	return postURLPattern.MatchString(text)
}
