package slot

// Status values of the today board, as shown to players.
type Status string

const (
	StatusFree     Status = "disponible"
	StatusReserved Status = "reservado"
)

var boardRanges = []string{
	"15:00 - 16:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
	"18:00 - 19:00",
	"19:00 - 20:00",
	"20:00 - 21:00",
	"21:00 - 22:00",
	"22:00 - 23:00",
	"23:00 - 00:00",
}

// reservedToday lists the taken ranges per court on the demo board.
var reservedToday = map[Court][]string{
	1: {"21:00 - 22:00"},
	2: {"21:00 - 22:00"},
	3: {"18:00 - 19:00", "20:00 - 21:00", "21:00 - 22:00", "22:00 - 23:00"},
	4: nil,
}

type BoardCell struct {
	Court  Court
	Range  string
	Status Status
}

func (c BoardCell) Bookable() bool {
	return c.Status == StatusFree
}

type BoardRow struct {
	Range string
	Cells []BoardCell
}

// TodayBoard is the fixed per-court grid of today's turns.
func TodayBoard() []BoardRow {
	rows := make([]BoardRow, 0, len(boardRanges))
	for _, rng := range boardRanges {
		row := BoardRow{Range: rng, Cells: make([]BoardCell, 0, CourtCount)}
		for c := Court(1); c <= CourtCount; c++ {
			row.Cells = append(row.Cells, BoardCell{Court: c, Range: rng, Status: boardStatus(c, rng)})
		}
		rows = append(rows, row)
	}
	return rows
}

func boardStatus(c Court, rng string) Status {
	for _, taken := range reservedToday[c] {
		if taken == rng {
			return StatusReserved
		}
	}
	return StatusFree
}
