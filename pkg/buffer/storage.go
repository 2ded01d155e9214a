package buffer

// LineStorage defines the read side of a line-oriented document.
// Columns and lengths are expressed in runes (not bytes).
type LineStorage interface {
	LineCount() int
	LineLen(idx int) int
	Line(idx int) string
}
