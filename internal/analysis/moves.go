package analysis

import "strings"

// ParseMoves reads up to four move lines, starting with first, which the
// caller has already consumed from cur. When the section ends early the
// remaining slots are null and cur is rewound so the next read returns the
// line that ended it.
func ParseMoves(first, gen string, cur *Cursor) [4]string {
	var moves [4]string
	line := first
	prev := cur.Pos()
	if isMoveHeader(line) {
		if next, ok := cur.Next(); ok && strings.HasPrefix(strings.TrimSpace(next), "-") {
			line = RepairLine(strings.TrimSpace(next))
		} else {
			cur.Seek(prev)
		}
	}
	for i := 0; i < len(moves); i++ {
		if !isMoveLine(line) {
			for j := i; j < len(moves); j++ {
				moves[j] = NullMove
			}
			cur.Seek(prev)
			return moves
		}
		moves[i] = RenameMove(gen, moveName(line))

		if i < len(moves)-1 {
			prev = cur.Pos()
			next, _ := cur.Next()
			line = RepairLine(strings.TrimSpace(next))
		}
	}
	return moves
}

// RenameMove returns the current name of a legacy move spelling. Analyses
// of the latest generation are returned unchanged.
func RenameMove(gen, move string) string {
	if gen == LatestGeneration {
		return move
	}
	if renamed, ok := moveRenames[move]; ok {
		return renamed
	}
	return move
}

// isMoveLine accepts "Move 2: ..." lines and bulleted continuations.
func isMoveLine(line string) bool {
	if line == "" {
		return false
	}
	return strings.Contains(strings.ToLower(line), "move") || strings.HasPrefix(line, "-")
}

// isMoveHeader reports a "Moves:" line that names no move itself and may
// introduce a bulleted list.
func isMoveHeader(line string) bool {
	return isMoveLine(line) && !strings.HasPrefix(line, "-") && moveName(line) == NullMove
}

func moveName(line string) string {
	var name string
	switch {
	case strings.HasPrefix(line, "-"):
		name = strings.TrimPrefix(line, "-")
	case strings.Contains(line, ":"):
		name = afterColon(line)
	case strings.Contains(line, " "):
		name = line[strings.Index(line, " ")+1:]
	}
	name = cutAlternatives(name)
	if name == "" {
		return NullMove
	}
	return name
}
