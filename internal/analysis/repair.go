package analysis

import (
	"regexp"
	"strings"
)

// looseSlash matches a slash with a space missing on one side.
var looseSlash = regexp.MustCompile(`(\w+)( /|/ )(\w+)`)

type repairRule struct {
	name  string
	match func(string) bool
	apply func(string) string
}

// repairRules correct known typos in the analyses. They are applied in
// order and the first match wins.
var repairRules = []repairRule{
	{
		name:  "slash spacing",
		match: looseSlash.MatchString,
		apply: func(line string) string { return looseSlash.ReplaceAllString(line, "$1 / $3") },
	},
	{
		name:  "space before colon",
		match: func(line string) bool { return strings.Contains(line, " :") },
		apply: func(line string) string { return strings.ReplaceAll(line, " :", ":") },
	},
	{
		name: "plural key",
		match: func(line string) bool {
			return strings.Contains(line, "evss") || strings.Contains(line, "items")
		},
		apply: func(line string) string { return strings.ReplaceAll(line, "s:", ":") },
	},
	{
		name:  "reversed iv",
		match: func(line string) bool { return line == "ivs: HP 0" },
		apply: func(string) string { return "ivs: 0 HP" },
	},
	{
		name:  "empty item",
		match: func(line string) bool { return line == "item:" },
		apply: func(string) string { return "" },
	},
	{
		name:  "alternative",
		match: func(line string) bool { return strings.Contains(line, " or ") },
		apply: func(line string) string { return line[:strings.Index(line, " or ")] },
	},
	{
		name:  "bare iv",
		match: func(line string) bool { return line == "4 HP IVs" },
		apply: func(string) string { return "ivs: 4 HP" },
	},
}

// RepairLine rewrites a trimmed analysis line that matches a known typo.
// Lines matching no rule are returned unchanged.
func RepairLine(line string) string {
	for _, rule := range repairRules {
		if rule.match(line) {
			return rule.apply(line)
		}
	}
	return line
}
