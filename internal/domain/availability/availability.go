package availability

import (
	"time"

	"github.com/notfound999/reservations/internal/domain/schedule"
)

type BlockKind string

const (
	KindClosed   BlockKind = "CLOSED"
	KindBreak    BlockKind = "BREAK"
	KindOccupied BlockKind = "OCCUPIED"
)

// BusyBlock is one contiguous unavailable interval. Lists of blocks are a
// union of possibly-overlapping intervals, not a normalized timeline; a
// CLOSED block and an OCCUPIED time-off block may cover the same instant.
type BusyBlock struct {
	Start time.Time
	End   time.Time
	Kind  BlockKind
}

// ClosedBlocks computes the CLOSED and BREAK blocks implied by the weekly
// configuration for every calendar day from viewStart's date through
// viewEnd's date inclusive. Unconfigured weekdays count as closed all day.
func ClosedBlocks(s schedule.Settings, viewStart, viewEnd time.Time) []BusyBlock {
	var blocks []BusyBlock

	lastDay := midnightOf(viewEnd)
	for day := midnightOf(viewStart); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		nextMidnight := day.AddDate(0, 0, 1)

		config, ok := s.Day(day.Weekday())
		if !ok || config.DayOff {
			blocks = append(blocks, BusyBlock{Start: day, End: nextMidnight, Kind: KindClosed})
			continue
		}

		blocks = append(blocks, BusyBlock{Start: day, End: config.Open.At(day), Kind: KindClosed})
		if config.HasBreak() {
			blocks = append(blocks, BusyBlock{
				Start: config.BreakStart.At(day),
				End:   config.BreakEnd.At(day),
				Kind:  KindBreak,
			})
		}
		blocks = append(blocks, BusyBlock{Start: config.Close.At(day), End: nextMidnight, Kind: KindClosed})
	}

	return blocks
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
