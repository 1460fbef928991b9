package htmltext

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// PreviewLimit is the character budget for list-view previews.
const PreviewLimit = 300

var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from an HTML fragment and returns the plain
// text, with entities decoded.
func StripTags(htmlBody string) string {
	return html.UnescapeString(stripPolicy.Sanitize(htmlBody))
}

// PlainPreview strips all markup and truncates the result to limit characters,
// appending "..." when it was cut. Used for list and preview contexts only;
// the full-article view renders the original HTML body.
func PlainPreview(htmlBody string, limit int) string {
	stripped := StripTags(htmlBody)

	runes := []rune(stripped)
	if len(runes) <= limit {
		return stripped
	}
	return string(runes[:limit]) + "..."
}

// LocalDisplayTime converts a stored UTC timestamp to a locale-formatted
// string for display. (eg. DD/MM/YYYY, H:MM:SS am)
func LocalDisplayTime(t time.Time) string {
	return t.Local().Format("02/01/2006, 3:04:05 pm")
}

// Map of HTML tags to presentation classes for the full-article view
var decorations = map[string]string{
	`<h1([^>]*)>`:         `<h1$1 class="text-4xl font-bold mb-4 mt-6">`,
	`<h2([^>]*)>`:         `<h2$1 class="text-3xl font-bold mb-3 mt-5">`,
	`<h3([^>]*)>`:         `<h3$1 class="text-2xl font-bold mb-2 mt-4">`,
	`<p([^>]*)>`:          `<p$1 class="mb-4 leading-relaxed">`,
	`<ul([^>]*)>`:         `<ul$1 class="list-disc list-inside mb-4 ml-4">`,
	`<ol([^>]*)>`:         `<ol$1 class="list-decimal list-inside mb-4 ml-4">`,
	`<blockquote([^>]*)>`: `<blockquote$1 class="border-l-4 pl-4 italic mb-4">`,
	`<pre([^>]*)>`:        `<pre$1 class="p-4 rounded-lg mb-4 overflow-x-auto">`,
	`<a([^>]*)>`:          `<a$1 class="link link-primary">`,
}

// DecorateArticleHTML adds presentation classes to bare HTML elements in an
// article body. Elements that already carry a class attribute are left alone.
func DecorateArticleHTML(content string) string {
	processed := content

	for pattern, replacement := range decorations {
		re := regexp.MustCompile(pattern)
		matches := re.FindAllStringSubmatch(processed, -1)

		for _, match := range matches {
			if len(match) > 1 && !strings.Contains(match[1], "class=") {
				processed = strings.Replace(processed, match[0], re.ReplaceAllString(match[0], replacement), 1)
			}
		}
	}

	return processed
}
