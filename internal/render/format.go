package render

import (
	"html/template"
	"regexp"
	"strings"
	"time"
)

// Present replaces the end date of a current position.
const Present = "Present"

var dateLayouts = []string{"2006-01", "2006-01-02"}

// FormatDate turns a stored year-month ("2021-06") into "Jun 2021".
// Empty or unparseable input yields "".
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

// DateRange formats "start - end", substituting Present for current entries
// whatever end holds.
func DateRange(start, end string, current bool) string {
	to := FormatDate(end)
	if current {
		to = Present
	}
	return FormatDate(start) + " - " + to
}

var cssColor = regexp.MustCompile(`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\(\s*[0-9.]+(deg|%)?(\s*[,/ ]\s*[0-9.%]+){2,3}\s*\))$`)

// accentColor picks the stored color, falling back to def when it is empty
// or not a plain CSS color token.
func accentColor(stored, def string) template.CSS {
	stored = strings.TrimSpace(stored)
	if stored == "" || !cssColor.MatchString(stored) {
		return template.CSS(def)
	}
	return template.CSS(stored)
}
