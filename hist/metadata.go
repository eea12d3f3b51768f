package hist

import "github.com/mstoykov/atlas"

// Metadata is an immutable, copy-on-write key/value tag tree attached to a
// histogram. It carries provenance (e.g. "source", "run_id") that the
// persistence tree walk surfaces without widening the Histogram struct's
// hot fields.
type Metadata struct {
	node *atlas.Node
}

// NewMetadata returns empty metadata (the atlas root).
func NewMetadata() Metadata {
	return Metadata{node: atlas.New()}
}

func (m Metadata) ensure() *atlas.Node {
	if m.node == nil {
		return atlas.New()
	}
	return m.node
}

// WithTag returns a new Metadata with key set to value, leaving the
// receiver unchanged (atlas nodes are immutable and safely shared).
func (m Metadata) WithTag(key, value string) Metadata {
	return Metadata{node: m.ensure().AddLink(key, value)}
}

// Tag returns the value recorded for key, if any.
func (m Metadata) Tag(key string) (string, bool) {
	return m.ensure().ValueByKey(key)
}

// Len returns the number of tags recorded.
func (m Metadata) Len() int { return m.ensure().Len() }

// Path returns every recorded tag as a map, for the persistence tree walk.
func (m Metadata) Path() map[string]string { return m.ensure().Path() }
