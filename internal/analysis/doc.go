// Package analysis parses the plain-text moveset analyses into detail records.
//
// Analyses follow an informal convention: a "name" line opens a set, and the
// lines up to the next blank line list item, ability, nature, EV/IV spreads
// and moves. The documents carry years of inconsistent formatting, so parsing
// is a mix of small scanners and fixed correction tables (tables.go). Every
// special case lives in a table so it can be audited and enumerated by tests.
//
// Parsers consume a Cursor, an indexable line list with an explicit read
// position. The moveset parser rewinds the cursor when a move section ends
// early, so callers must treat the cursor as shared, mutable state.
package analysis
