package standings

import (
	"sort"
	"strings"
)

// Column names a sortable league-table column.
type Column string

const (
	ColumnRank     Column = "rank"
	ColumnManager  Column = "manager"
	ColumnTotal    Column = "total"
	ColumnGameweek Column = "gw"
	ColumnLeft     Column = "left"
	ColumnLive     Column = "live"
	ColumnCaptain  Column = "captain"
	ColumnVice     Column = "vice"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultDirection is the direction a column sorts in when first selected:
// alphabetic columns and rank ascend, the point columns descend.
func DefaultDirection(c Column) Direction {
	switch c {
	case ColumnManager, ColumnCaptain, ColumnVice, ColumnRank:
		return Ascending
	default:
		return Descending
	}
}

// Toggle flips the direction for a repeated click on the same column.
func Toggle(d Direction) Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Sort orders rows by the column and direction, breaking every tie by manager
// id ascending. The sort is deterministic, so sorting an already sorted slice
// again is a no-op.
func Sort(rows []Row, col Column, dir Direction) []Row {
	out := append([]Row(nil), rows...)

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], col)
		if c == 0 {
			return out[i].ManagerID < out[j].ManagerID
		}
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})

	return out
}

func compare(a, b Row, col Column) int {
	switch col {
	case ColumnManager:
		return strings.Compare(foldName(a.ManagerName), foldName(b.ManagerName))
	case ColumnCaptain:
		return strings.Compare(foldName(a.CaptainName), foldName(b.CaptainName))
	case ColumnVice:
		return strings.Compare(foldName(a.ViceName), foldName(b.ViceName))
	case ColumnTotal:
		return a.TotalPoints - b.TotalPoints
	case ColumnGameweek:
		return a.GameweekPoints - b.GameweekPoints
	case ColumnLeft:
		return a.PlayersLeft - b.PlayersLeft
	case ColumnLive:
		return a.LivePoints - b.LivePoints
	default:
		return a.Rank - b.Rank
	}
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
