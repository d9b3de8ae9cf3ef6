package wiki

import "strings"

// approvedLangs are the only languages the Jira/Confluence code macro
// can highlight.
var approvedLangs = []string{
	"actionscript3",
	"applescript",
	"bash",
	"c#",
	"c++",
	"css",
	"coldfusion",
	"delphi",
	"diff",
	"erlang",
	"groovy",
	"xml",
	"java",
	"jfx",
	"javascript",
	"php",
	"text",
	"powershell",
	"python",
	"ruby",
	"sql",
	"sass",
	"scala",
	"vb",
	"yaml",
}

// langAliases maps common Markdown fence tokens onto an approved language.
var langAliases = map[string][]string{
	"actionscript3": {"as3", "actionscript"},
	"applescript":   {"osascript"},
	"bash":          {"console", "shell", "zsh", "sh"},
	"c#":            {"csharp"},
	"c++":           {"cpp"},
	"coldfusion":    {"cfm", "cfml", "coldfusion html"},
	"delphi":        {"pascal", "objectpascal"},
	"diff":          {"udiff"},
	"xml":           {"html"},
	"jfx":           {"java fx"},
	"javascript":    {"js", "node"},
	"php":           {"inc"},
	"powershell":    {"posh"},
	"ruby":          {"jruby", "macruby", "rake", "rb", "rbx"},
	"sass":          {"scss", "less", "stylus"},
	"vb":            {"visual basic", "vb.net", "vbnet"},
}

// langMap is built once at init; every approved language maps to itself,
// every alias to its approved language.
var langMap = buildLangMap()

func buildLangMap() map[string]string {
	m := make(map[string]string, len(approvedLangs)+2*len(langAliases))
	for _, lang := range approvedLangs {
		m[lang] = lang
	}
	for lang, aliases := range langAliases {
		for _, alias := range aliases {
			m[alias] = lang
		}
	}
	return m
}

// ResolveLang maps a fenced code block language token to a language the
// code macro supports. Unknown tokens fall back to "text".
func ResolveLang(token string) string {
	if lang, ok := langMap[strings.ToLower(token)]; ok {
		return lang
	}
	return "text"
}
