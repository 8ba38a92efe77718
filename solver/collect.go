package solver

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/trail"
)

// collector de-duplicates trails by node sequence, keeping first-seen order,
// and refuses new trails once max distinct ones are held.
type collector struct {
	max   int
	byKey *linkedhashmap.Map // encoded trail -> trail.Trail
}

func newCollector(max int) *collector {
	return &collector{max: max, byKey: linkedhashmap.New()}
}

// add merges ts and reports whether the cap is reached.
func (c *collector) add(ts []trail.Trail) bool {
	var key string
	for _, t := range ts {
		if c.full() {
			return true
		}
		key = codec.FormatTrail(t)
		if _, found := c.byKey.Get(key); found {
			continue
		}
		c.byKey.Put(key, t)
	}

	return c.full()
}

func (c *collector) full() bool {
	return c.byKey.Size() >= c.max
}

// trails returns the held trails in insertion order.
func (c *collector) trails() []trail.Trail {
	vals := c.byKey.Values()
	out := make([]trail.Trail, len(vals))
	for i, v := range vals {
		out[i] = v.(trail.Trail)
	}

	return out
}
