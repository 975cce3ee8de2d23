package reports

// counter accumulates an int64 total per key while remembering the order in
// which keys were first seen. Every grouped aggregate in this package runs
// through one of these so that tie policies ("first encountered wins",
// "ties in input order") are deterministic instead of depending on map
// iteration.
type counter[K comparable] struct {
	order  []K
	totals map[K]int64
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{totals: make(map[K]int64)}
}

func (c *counter[K]) add(key K, delta int64) {
	if _, seen := c.totals[key]; !seen {
		c.order = append(c.order, key)
	}
	c.totals[key] += delta
}

func (c *counter[K]) len() int { return len(c.order) }

// maxKeys returns every key whose total is the maximum, in first-encounter
// order. This is the single grouped-max algorithm behind all "top X per
// group" reports; callers that want a LIMIT-1 style answer take the first
// element, callers that keep ties take the whole slice.
func (c *counter[K]) maxKeys() []K {
	if len(c.order) == 0 {
		return nil
	}

	max := c.totals[c.order[0]]
	for _, key := range c.order[1:] {
		if v := c.totals[key]; v > max {
			max = v
		}
	}

	var keys []K
	for _, key := range c.order {
		if c.totals[key] == max {
			keys = append(keys, key)
		}
	}
	return keys
}
