// Package a1 converts zero-indexed row and column coordinates into the A1
// notation strings the Google Sheets API uses to address cell ranges.
package a1

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxColumn is the largest encodable column index, column "ZZZ".
const MaxColumn = 18277

var (
	// ErrColumnOutOfRange is returned for column indexes beyond column "ZZZ".
	ErrColumnOutOfRange = errors.New("column index out of range")
	// ErrInvalidRange is returned when a coordinate tuple matches none of the
	// recognized range shapes.
	ErrInvalidRange = errors.New("coordinates do not form a valid range")
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Int returns a pointer to i, for passing coordinate literals to FormatRange.
func Int(i int) *int { return &i }

// ColumnName returns the letter name of a zero-indexed column: 0 is "A",
// 25 is "Z", 26 is "AA", and so on up to MaxColumn, "ZZZ". Column letters
// form a bijective base-26 numeral system: there is no zero digit, so each
// extra letter multiplies the block size by 26 instead of extending it.
func ColumnName(column int) (string, error) {
	switch {
	case column < 0:
		return "", errors.Wrapf(ErrColumnOutOfRange, "column %d", column)
	// A - Z
	case column < 26:
		return string(letters[column]), nil
	// AA - ZZ
	case column < 702:
		// The high digit is offset by one: there is no zero letter.
		return string([]byte{letters[column/26-1], letters[column%26]}), nil
	// AAA - ZZZ
	case column <= MaxColumn:
		rem := column - 702
		return string([]byte{
			letters[rem/676],
			letters[(column/26-1)%26],
			letters[column%26],
		}), nil
	default:
		return "", errors.Wrapf(ErrColumnOutOfRange, "column %d is beyond column ZZZ (%d)", column, MaxColumn)
	}
}

// FormatRange builds the A1 notation string addressing a range of cells from
// four independently optional zero-indexed coordinates. Rows are rendered
// 1-indexed. Columns and rows may each be bounded or unbounded, so the
// result takes one of several shapes:
//
//	FormatRange(Int(0), Int(0), Int(2), Int(2))  // "A1:C3" — a bounded rectangle
//	FormatRange(Int(0), Int(4), Int(0), nil)     // "A5:A"  — a column from row 5 down
//	FormatRange(Int(0), nil, Int(3), nil)        // "A:D"   — whole columns
//	FormatRange(nil, Int(4), Int(2), Int(8))     // "5:C9"  — rows 5-9 up to column C
//	FormatRange(nil, Int(4), nil, Int(8))        // "5:9"   — whole rows
//
// A tuple matching none of the recognized shapes returns ErrInvalidRange.
func FormatRange(startColumn, startRow, endColumn, endRow *int) (string, error) {
	for _, r := range []*int{startRow, endRow} {
		if r != nil && *r < 0 {
			return "", errors.Wrapf(ErrInvalidRange, "negative row %d", *r)
		}
	}

	if startColumn != nil && endColumn != nil {
		start, err := ColumnName(*startColumn)
		if err != nil {
			return "", err
		}
		end, err := ColumnName(*endColumn)
		if err != nil {
			return "", err
		}
		switch {
		case startRow != nil && endRow != nil:
			return fmt.Sprintf("%s%d:%s%d", start, *startRow+1, end, *endRow+1), nil
		case startRow != nil:
			// "A5:A" — all cells in the column from row 5 onward.
			return fmt.Sprintf("%s%d:%s", start, *startRow+1, end), nil
		case endRow != nil:
			// "A:A5" is not valid grammar; normalize to "A5:A".
			return fmt.Sprintf("%s%d:%s", start, *endRow+1, end), nil
		default:
			return fmt.Sprintf("%s:%s", start, end), nil
		}
	}

	if startColumn == nil && startRow != nil && endRow != nil {
		if endColumn != nil {
			// "10:D18" — rows 10 through 18, bounded by column D on the right.
			end, err := ColumnName(*endColumn)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d:%s%d", *startRow+1, end, *endRow+1), nil
		}
		return fmt.Sprintf("%d:%d", *startRow+1, *endRow+1), nil
	}

	return "", errors.Wrapf(ErrInvalidRange,
		"start column %s, start row %s, end column %s, end row %s",
		coord(startColumn), coord(startRow), coord(endColumn), coord(endRow))
}

func coord(i *int) string {
	if i == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *i)
}
