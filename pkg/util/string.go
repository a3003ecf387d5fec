package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug creates a URL-friendly slug from a title, transliterating
// German umlauts.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugReplacer.Replace(slug)
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	// Limit length
	if len(slug) > 80 {
		slug = slug[:80]
		slug = strings.Trim(slug, "-")
	}

	return slug
}

// ArticleSlug creates a date-prefixed slug for a news article so that
// reports about recurring opponents stay unique across seasons.
func ArticleSlug(title string, date time.Time) string {
	return fmt.Sprintf("%s-%s", date.Format("2006-01-02"), GenerateSlug(title))
}
