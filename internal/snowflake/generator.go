// Package snowflake generates 64-bit unique identifiers without a central
// coordinator. An ID is composed of a 41-bit millisecond timestamp, a 10-bit
// node identity (5-bit region + 5-bit worker) and a 12-bit per-millisecond
// sequence, so IDs sort by generation time.
package snowflake

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Epoch for the timestamp component: 2024-01-01T00:00:00Z in Unix millis.
const epochMs int64 = 1704067200000

const (
	regionIDBits = 5
	workerIDBits = 5
	sequenceBits = 12

	MaxRegionID = (1 << regionIDBits) - 1
	MaxWorkerID = (1 << workerIDBits) - 1
	maxSequence = (1 << sequenceBits) - 1

	workerShift    = sequenceBits
	regionShift    = sequenceBits + workerIDBits
	timestampShift = sequenceBits + workerIDBits + regionIDBits
)

var (
	// ErrInvalidNode reports a region or worker id outside [0, 31].
	ErrInvalidNode = errors.New("snowflake: node id out of range")

	// ErrClockRegression reports that the wall clock moved backwards since
	// the last generated ID. Minting an ID anyway could collide with an
	// already issued one, so the call fails instead. Not retryable.
	ErrClockRegression = errors.New("snowflake: clock moved backwards")
)

type Generator struct {
	mu sync.Mutex

	regionID uint64
	workerID uint64

	lastTimestamp int64
	sequence      uint64

	now func() int64
}

// New validates the node identity and returns a generator. Both ids must be
// in [0, 31]. One generator per process configuration; callers share the
// instance rather than constructing new ones per request.
func New(regionID, workerID int64) (*Generator, error) {
	if regionID < 0 || regionID > MaxRegionID {
		return nil, fmt.Errorf("%w: region id %d not in [0, %d]", ErrInvalidNode, regionID, MaxRegionID)
	}
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, fmt.Errorf("%w: worker id %d not in [0, %d]", ErrInvalidNode, workerID, MaxWorkerID)
	}

	return &Generator{
		regionID:      uint64(regionID),
		workerID:      uint64(workerID),
		lastTimestamp: -1,
		now:           nowMillis,
	}, nil
}

// NextID returns the next identifier. Safe for concurrent use. Values are
// strictly increasing for a single generator. When the 12-bit sequence is
// exhausted within one millisecond the call busy-polls the clock until the
// next millisecond; the critical section never performs I/O.
func (g *Generator) NextID() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now()
	if ts < g.lastTimestamp {
		return 0, fmt.Errorf("%w: now=%d last=%d", ErrClockRegression, ts, g.lastTimestamp)
	}

	if ts == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			for ts <= g.lastTimestamp {
				ts = g.now()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = ts

	id := uint64(ts-epochMs)<<timestampShift |
		g.regionID<<regionShift |
		g.workerID<<workerShift |
		g.sequence
	return id, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
