package wiki

import "strings"

// escaper rewrites characters that would otherwise be parsed as wiki
// markup when they appear inside macro bodies or inline code.
var escaper = strings.NewReplacer(
	"{", "&#123;",
	"}", "&#125;",
	"*", `\*`,
)

// Escape substitutes curly braces and asterisks, then escapes a leading
// hyphen. A hyphen only breaks rendering when it is the first character,
// so interior hyphens are left alone.
func Escape(s string) string {
	r := escaper.Replace(s)
	if strings.HasPrefix(r, "-") {
		r = `\-` + r[1:]
	}
	return r
}
