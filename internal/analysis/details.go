package analysis

import (
	"fmt"
	"strings"
)

// Spread maps canonical stats to the value text written in the analysis.
// Values are kept verbatim; the calculator parses them.
type Spread map[Stat]string

// Details is the parsed field set of one moveset.
type Details struct {
	Level   int
	EVs     Spread
	IVs     Spread
	Nature  string
	Ability string
	Item    string
	Moves   [4]string
}

// NewDetails returns an empty set for tier with every move slot null.
func NewDetails(tier string) Details {
	return Details{
		Level: LevelForTier(tier),
		Moves: [4]string{NullMove, NullMove, NullMove, NullMove},
	}
}

// Clone returns a deep copy of d.
func (d Details) Clone() Details {
	out := d
	out.EVs = d.EVs.clone()
	out.IVs = d.IVs.clone()
	return out
}

// HasMove reports whether any slot holds move.
func (d Details) HasMove(move string) bool {
	for _, m := range d.Moves {
		if m == move {
			return true
		}
	}
	return false
}

func (s Spread) clone() Spread {
	if s == nil {
		return nil
	}
	out := make(Spread, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// LevelForTier returns the level sets in tier are played at.
func LevelForTier(tier string) int {
	switch {
	case tier == TierLittleCup:
		return 5
	case strings.HasPrefix(tier, doublesTierPrefix):
		return 50
	default:
		return 100
	}
}

// ParseDetails reads set lines from cur until the first blank line and
// returns the parsed set. The blank line is consumed. gen selects the
// generation-specific rename tables.
func ParseDetails(tier, gen string, cur *Cursor) (Details, error) {
	details := NewDetails(tier)
	for {
		raw, ok := cur.Next()
		if !ok {
			break
		}
		lineNo := cur.Pos()
		line := strings.TrimSpace(raw)
		if line == "" {
			break
		}
		line = RepairLine(line)
		if line == "" {
			continue
		}

		key := lineKey(line)
		switch {
		case strings.HasPrefix(key, "move"):
			details.Moves = ParseMoves(line, gen, cur)
		case key == "item" || key == "nature" || key == "ability":
			details.setField(key, renameValue(gen, fieldValue(line)))
		case key == "evs" || key == "ivs":
			spread, err := ParseSpread(line)
			if err != nil {
				return details, &LineError{Line: lineNo, Text: line, Err: err}
			}
			if key == "evs" {
				details.EVs = spread
			} else {
				details.IVs = spread
			}
		}
	}
	return details, nil
}

func (d *Details) setField(key, value string) {
	switch key {
	case "item":
		if _, dropped := droppedItems[value]; dropped {
			d.Item = ""
			return
		}
		d.Item = value
	case "nature":
		d.Nature = value
	case "ability":
		d.Ability = value
	}
}

// ParseSpread parses an "EVs: 252 Atk / 4 SpD / 252 Spe" style line.
func ParseSpread(line string) (Spread, error) {
	body := afterColon(line)
	spread := make(Spread)
	for _, segment := range strings.Split(body, "/") {
		fields := strings.Fields(segment)
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 1 {
			return nil, fmt.Errorf("%w: %q has no value", ErrUnknownStat, strings.TrimSpace(segment))
		}
		label := strings.Join(fields[1:], " ")
		stat, ok := CanonicalStat(label)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownStat, label)
		}
		spread[stat] = fields[0]
	}
	return spread, nil
}

// CanonicalStat maps a document stat label to its canonical code. Labels
// are matched case-insensitively with inner spaces removed.
func CanonicalStat(label string) (Stat, bool) {
	stat, ok := statAliases[strings.ToLower(strings.Join(strings.Fields(label), ""))]
	return stat, ok
}

func lineKey(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		line = line[:idx]
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// fieldValue returns the text after the key, cut before a slash-separated
// list of alternatives.
func fieldValue(line string) string {
	var value string
	if idx := strings.Index(line, " "); idx >= 0 {
		value = line[idx+1:]
	} else {
		value = afterColon(line)
	}
	return cutAlternatives(value)
}

func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return line
}

func cutAlternatives(value string) string {
	if idx := strings.Index(value, " /"); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}

func renameValue(gen, value string) string {
	if renamed, ok := QuirksFor(gen).ValueRenames[value]; ok {
		return renamed
	}
	return value
}
