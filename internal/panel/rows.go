package panel

import (
	"fmt"
	"strings"
)

// Row is one slot in the panel's vertical stack.
type Row int

// Rows in stack order, top to bottom.
const (
	RowClose Row = iota
	RowImage
	RowHeading
	RowSubheading
	RowPrimary
	RowSecondary
	RowFooter

	rowCount
)

// AllRows lists every row in stack order.
func AllRows() []Row {
	rows := make([]Row, 0, rowCount)
	for r := RowClose; r < rowCount; r++ {
		rows = append(rows, r)
	}
	return rows
}

func (r Row) String() string {
	switch r {
	case RowClose:
		return "close"
	case RowImage:
		return "image"
	case RowHeading:
		return "heading"
	case RowSubheading:
		return "subheading"
	case RowPrimary:
		return "primary"
	case RowSecondary:
		return "secondary"
	case RowFooter:
		return "footer"
	default:
		return fmt.Sprintf("Row(%d)", int(r))
	}
}

// Collapsible reports whether the row's space is removed when it is hidden.
// The close row is fixed by configuration, every other row depends on content.
func (r Row) Collapsible() bool {
	return r != RowClose && r >= 0 && r < rowCount
}

// SizeClass is the vertical size class reported by the host.
type SizeClass int

const (
	SizeRegular SizeClass = iota
	SizeCompact
)

func (sc SizeClass) String() string {
	if sc == SizeCompact {
		return "compact"
	}
	return "regular"
}

// Visibility holds a hidden flag per row.
type Visibility struct {
	hidden [rowCount]bool
}

func (v *Visibility) set(r Row, hidden bool) {
	v.hidden[r] = hidden
}

// Hidden reports whether the row is collapsed. Unknown rows are hidden.
func (v Visibility) Hidden(r Row) bool {
	if r < 0 || r >= rowCount {
		return true
	}
	return v.hidden[r]
}

// Visible is the inverse of Hidden.
func (v Visibility) Visible(r Row) bool {
	return !v.Hidden(r)
}

// VisibleRows returns the visible rows in stack order.
func (v Visibility) VisibleRows() []Row {
	var rows []Row
	for r := RowClose; r < rowCount; r++ {
		if !v.hidden[r] {
			rows = append(rows, r)
		}
	}
	return rows
}

func (v Visibility) String() string {
	rows := v.VisibleRows()
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.String()
	}
	return strings.Join(names, ",")
}
