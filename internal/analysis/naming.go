package analysis

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SubjectKey derives the subject key from an analysis filename.
//
// Keys match the calculator's naming: "Rotom-Wash.txt" becomes "Rotom-W",
// while subjects whose formes share a base name ("Porygon-Z") keep the full
// name. Exceptions are listed in tables.go.
func SubjectKey(filename string) string {
	name := norm.NFC.String(stripExtension(filepath.Base(filename)))

	if suffix, ok := appendedFormes[name]; ok {
		name += suffix
	}
	if collapsed, ok := collapsedFormes[name]; ok {
		name = collapsed
	}

	hyphen := strings.Index(name, "-")
	if hyphen < 0 {
		return name
	}

	base := name[:hyphen]
	if _, ok := uniformBases[base]; ok {
		return name
	}
	if _, ok := uniformNames[name]; ok {
		return name
	}
	if remapped, ok := remappedFormes[name]; ok {
		return remapped
	}
	if hyphen+1 >= len(name) {
		return base
	}
	_, size := utf8.DecodeRuneInString(name[hyphen+1:])
	return name[:hyphen+1+size]
}

// UnreleasedSubjectKey applies the forme suffix used by the Unreleased tier.
func UnreleasedSubjectKey(subject string) string {
	if suffix, ok := unreleasedFormes[subject]; ok {
		return subject + suffix
	}
	return subject
}

func stripExtension(name string) string {
	if idx := strings.Index(name, ".old"); idx >= 0 {
		return name[:idx]
	}
	if idx := strings.Index(name, ".txt"); idx >= 0 {
		return name[:idx]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
