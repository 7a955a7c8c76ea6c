// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

// =============================================================================
// COMPARABLE LINE
// =============================================================================

// ComparableLine pairs a line's original display text with the derived key
// used for equality. Two lines are diff-equivalent when their Keys are equal,
// regardless of Text. Construct with NewComparableLine or Literal.
type ComparableLine struct {
	Text string // Original text, preserved for display
	Key  string // Comparison key; equality is defined on this alone
}

// NewComparableLine creates a line with distinct display text and key.
func NewComparableLine(text, key string) ComparableLine {
	return ComparableLine{Text: text, Key: key}
}

// Literal creates a line whose key is its text, for callers that do not
// derive keys.
func Literal(text string) ComparableLine {
	return ComparableLine{Text: text, Key: text}
}

// Equal reports whether two lines are diff-equivalent.
func (c ComparableLine) Equal(other ComparableLine) bool {
	return c.Key == other.Key
}

// =============================================================================
// DIFF STATE
// =============================================================================

// DiffState classifies a single output line.
type DiffState int

const (
	// Unchanged represents lines present on both sides in stable order
	Unchanged DiffState = iota
	// Added represents lines present only in the right sequence
	Added
	// Deleted represents lines present only in the left sequence
	Deleted
	// Moved represents matched lines that changed relative position
	Moved
)

// String returns the string representation of a diff state.
func (s DiffState) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Moved:
		return "moved"
	default:
		return "unknown"
	}
}

// Prefix returns the gutter character for this state.
func (s DiffState) Prefix() string {
	switch s {
	case Added:
		return "+"
	case Deleted:
		return "-"
	case Moved:
		return "↔"
	default:
		return " "
	}
}

// =============================================================================
// DIFF LINE
// =============================================================================

// LineContent is one side's rendering of a diff line. Number is the 1-based
// position in that side's original input sequence.
type LineContent struct {
	Number int    // 1-based line number in the source sequence
	Text   string // Original display text
}

// DiffLine is a single line of diff output.
//
// Invariants:
//   - Added: Left == nil, Right != nil
//   - Deleted: Left != nil, Right == nil
//   - Unchanged, Moved: both sides set
//   - MovedFrom/MovedTo are nonzero only when State == Moved, holding the
//     1-based source and destination line numbers
type DiffLine struct {
	State     DiffState
	Left      *LineContent
	Right     *LineContent
	MovedFrom int
	MovedTo   int
}

// =============================================================================
// MOVED BLOCK
// =============================================================================

// MovedBlock is one maximal contiguous run of moved lines. All fields are
// 1-based inclusive line numbers.
type MovedBlock struct {
	SourceStart int
	SourceEnd   int
	DestStart   int
	DestEnd     int
}

// =============================================================================
// STATISTICS
// =============================================================================

// DiffStatistics holds per-state line counts for a result.
type DiffStatistics struct {
	Additions int
	Deletions int
	Moves     int
	Unchanged int
}

// statisticsFromLines derives statistics by scanning the final line list.
// Statistics are never maintained independently of the lines that produce
// them.
func statisticsFromLines(lines []DiffLine) DiffStatistics {
	var stats DiffStatistics
	for _, line := range lines {
		switch line.State {
		case Added:
			stats.Additions++
		case Deleted:
			stats.Deletions++
		case Moved:
			stats.Moves++
		case Unchanged:
			stats.Unchanged++
		}
	}
	return stats
}

// TotalChanges returns the number of lines that differ between the inputs.
func (s DiffStatistics) TotalChanges() int {
	return s.Additions + s.Deletions + s.Moves
}

// =============================================================================
// RESULT
// =============================================================================

// DiffResult is the complete outcome of one diff invocation. It is created
// once per call and must not be mutated by consumers.
type DiffResult struct {
	Lines       []DiffLine
	Statistics  DiffStatistics
	MovedBlocks []MovedBlock
}

// newResult builds a result, deriving statistics from the lines.
func newResult(lines []DiffLine, blocks []MovedBlock) *DiffResult {
	return &DiffResult{
		Lines:       lines,
		Statistics:  statisticsFromLines(lines),
		MovedBlocks: blocks,
	}
}

// IsEmpty reports whether the result contains no lines.
func (r *DiffResult) IsEmpty() bool {
	return len(r.Lines) == 0
}
