package setdex

import (
	"strconv"
	"strings"

	"setdex/internal/analysis"
)

var (
	subjectEscaper = strings.NewReplacer(`'`, `\u0027`)
	labelEscaper   = strings.NewReplacer(`"`, `\u0022`)
)

// Serialize renders the body of a setdex object literal: subjects in lexical
// order, sets in insertion order. The closing brace of the last subject is
// left to the caller; see Render.
func Serialize(s *Setdex) string {
	var b strings.Builder
	for i, subject := range s.Subjects() {
		if i > 0 {
			b.WriteString("},")
		}
		b.WriteByte('"')
		b.WriteString(subjectEscaper.Replace(subject))
		b.WriteString(`":{`)
		for j, set := range s.Sets(subject) {
			if j > 0 {
				b.WriteByte(',')
			}
			writeSet(&b, set)
		}
	}
	return b.String()
}

// Render returns the complete file text declaring s as the global name.
func Render(name string, s *Setdex) string {
	if s.Len() == 0 {
		return "var " + name + "={};"
	}
	return "var " + name + "={" + Serialize(s) + "}};"
}

func writeSet(b *strings.Builder, set Set) {
	d := set.Details
	b.WriteByte('"')
	b.WriteString(labelEscaper.Replace(set.Label))
	b.WriteString(`":{"level":`)
	b.WriteString(strconv.Itoa(d.Level))
	if d.EVs != nil {
		b.WriteString(`,"evs":`)
		writeSpread(b, d.EVs)
	}
	if d.IVs != nil {
		b.WriteString(`,"ivs":`)
		writeSpread(b, d.IVs)
	}
	writeField(b, "nature", d.Nature)
	writeField(b, "ability", d.Ability)
	writeField(b, "item", d.Item)
	b.WriteString(`,"moves":[`)
	for i, move := range d.Moves {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(move)
		b.WriteByte('"')
	}
	b.WriteString("]}")
}

func writeSpread(b *strings.Builder, spread analysis.Spread) {
	b.WriteByte('{')
	first := true
	for _, stat := range analysis.StatOrder {
		value, ok := spread[stat]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteByte('"')
		b.WriteString(string(stat))
		b.WriteString(`":`)
		b.WriteString(value)
	}
	b.WriteByte('}')
}

func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(`,"`)
	b.WriteString(key)
	b.WriteString(`":"`)
	b.WriteString(value)
	b.WriteByte('"')
}
