// Package series groups resolved rows into named, ordered plot series for
// one conversion run.
package series

// DataPoint is one plotted sample: epoch seconds on the time axis and an
// opaque value token. Values stay text until the charting engine interprets
// them; blank values survive accumulation and are dropped at emission time.
type DataPoint struct {
	Timestamp int64
	Value     string
}

// Series is a named, append-only sequence of points. The key may be empty
// when no filter terms are configured.
type Series struct {
	Key    string
	Points []DataPoint
}

// Collection holds the series of one run, keyed by name, preserving the
// order in which keys were first seen. The charting protocol requires every
// series declaration before any data block, in matching order, so all
// iteration goes through Keys rather than the map.
type Collection struct {
	order []string
	byKey map[string]*Series
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{byKey: make(map[string]*Series)}
}

// Append adds a point to the series named key, creating the series on first
// use.
func (c *Collection) Append(key string, p DataPoint) {
	s, ok := c.byKey[key]
	if !ok {
		s = &Series{Key: key}
		c.byKey[key] = s
		c.order = append(c.order, key)
	}
	s.Points = append(s.Points, p)
}

// Keys returns the series keys in first-seen order.
func (c *Collection) Keys() []string {
	return c.order
}

// Get returns the series named key, or nil if it was never created.
func (c *Collection) Get(key string) *Series {
	return c.byKey[key]
}

// Len returns the number of series.
func (c *Collection) Len() int {
	return len(c.order)
}
