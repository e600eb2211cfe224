package response

import (
	"time"

	"github.com/notfound999/reservations/internal/domain/availability"
)

type BusyBlockResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Kind      string    `json:"kind"`
}

func FromBusyBlocks(blocks []availability.BusyBlock) []BusyBlockResponse {
	out := make([]BusyBlockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = BusyBlockResponse{
			StartTime: b.Start,
			EndTime:   b.End,
			Kind:      string(b.Kind),
		}
	}
	return out
}
