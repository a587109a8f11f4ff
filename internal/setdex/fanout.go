package setdex

import (
	"strings"

	"setdex/internal/analysis"
)

const (
	relicSongMove    = "Relic Song"
	dragonAscentMove = "Dragon Ascent"
	megaStoneMarker  = "ite"
	megaPrefix       = "Mega "
)

// stanceSubjects are listed under each stance forme instead of the base key.
var stanceSubjects = map[string][]string{
	"Aegislash": {"Aegislash-Shield", "Aegislash-Blade"},
}

// megaStoneLookalikes contain the mega stone marker but never trigger mega
// evolution.
var megaStoneLookalikes = map[string]struct{}{
	"Eviolite":   {},
	"White Herb": {},
}

// itemKeepers hold their item after mega evolving.
var itemKeepers = map[string]struct{}{
	"Rayquaza": {},
}

type placement struct {
	subject string
	set     Set
}

// fanOut lists every subject key an accepted set is recorded under, in the
// order the entries are appended.
func fanOut(subject string, set Set) []placement {
	var out []placement
	if set.Details.HasMove(relicSongMove) {
		out = append(out, placement{subject: subject + "-P", set: set})
	}
	if formes, ok := stanceSubjects[subject]; ok {
		for _, forme := range formes {
			out = append(out, placement{subject: forme, set: set})
		}
		return out
	}
	if mega, ok := megaEvolution(subject, set); ok {
		out = append(out, mega)
	}
	return append(out, placement{subject: subject, set: set})
}

func holdsMegaStone(d analysis.Details) bool {
	if d.Item == "" {
		return false
	}
	if _, lookalike := megaStoneLookalikes[d.Item]; lookalike {
		return false
	}
	return strings.Contains(d.Item, megaStoneMarker) || d.HasMove(dragonAscentMove)
}

func megaEvolution(subject string, set Set) (placement, bool) {
	if !holdsMegaStone(set.Details) {
		return placement{}, false
	}
	name := megaPrefix + subject
	if suffix := megaSuffix(set.Details.Item); suffix != "" {
		name += suffix
	}
	details := set.Details.Clone()
	details.Ability = ""
	if _, keeps := itemKeepers[subject]; !keeps {
		details.Item = ""
	}
	return placement{subject: name, set: Set{Label: set.Label, Details: details}}, true
}

func megaSuffix(item string) string {
	for _, suffix := range []string{" X", " Y"} {
		if strings.HasSuffix(item, suffix) {
			return suffix
		}
	}
	return ""
}
