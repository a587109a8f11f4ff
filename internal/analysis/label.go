package analysis

import "strings"

// IsNameLine reports whether line opens a new set.
func IsNameLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "name")
}

// SetLabel builds the label of the set opened by a name line. Sets are
// labelled "<tier> <title>"; Unreleased sets keep the bracketed title only.
func SetLabel(tier, line string) string {
	line = strings.TrimSpace(line)
	if tier == TierUnreleased {
		if idx := strings.Index(line, "["); idx >= 0 {
			return line[idx:]
		}
		return line
	}
	return tier + " " + line[strings.Index(line, " ")+1:]
}

// IsLeveledLabel reports whether a label names a low-level (FEAR) set.
func IsLeveledLabel(label string) bool {
	return strings.Contains(label, "Level") || strings.Contains(label, "Lv.")
}

// Keep reports whether a parsed set belongs in the setdex.
func Keep(label, gen string, details Details) bool {
	if IsLeveledLabel(label) {
		return false
	}
	if details.Nature == "" && !QuirksFor(gen).KeepWithoutNature {
		return false
	}
	return true
}
