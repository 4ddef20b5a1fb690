package graph

// Descriptor identifies a descriptive attribute of an entity
type Descriptor int

const (
	Documentation Descriptor = iota
	Alias
	GlobalIdentifier
	descriptorCount
)

var descriptorNames = [...]string{
	Documentation:    "documentation",
	Alias:            "alias",
	GlobalIdentifier: "globalIdentifier",
}

func (d Descriptor) String() string {
	if d < 0 || d >= descriptorCount {
		return "descriptor"
	}
	return descriptorNames[d]
}

// AllDescriptors lists all descriptor kinds
func AllDescriptors() []Descriptor {
	return []Descriptor{Documentation, Alias, GlobalIdentifier}
}

type descriptorState uint8

const (
	uncomputed descriptorState = iota
	computing
	computed
)

// Descriptors memoizes descriptor values of one entity. A value is computed once;
// later calls return the cached value even when it is empty.
type Descriptors struct {
	states [descriptorCount]descriptorState
	values [descriptorCount]string
	depths [descriptorCount]int // nesting depth of a computation in progress
}

// Resolution tracks nested descriptor computations across entities. A re-entrant
// request for a value being computed returns "" and cuts the cycle; a value computed
// below such a cut depends on where the cycle was entered, so it is returned but not
// cached. The zero value is ready to use; one Resolution serves one model.
type Resolution struct {
	depth int
	low   int // lowest depth cut since the current computation started
}

// Resolve returns the cached value of kind or computes it
func (r *Resolution) Resolve(d *Descriptors, kind Descriptor, compute func() string) string {
	if kind < 0 || kind >= descriptorCount {
		return ""
	}
	switch d.states[kind] {
	case computed:
		return d.values[kind]
	case computing:
		r.low = min(r.low, d.depths[kind])
		return ""
	}
	r.depth++
	depth, outer := r.depth, r.low
	r.low = depth
	d.states[kind] = computing
	d.depths[kind] = depth
	value := compute()
	if r.low >= depth {
		d.values[kind] = value
		d.states[kind] = computed
	} else {
		d.states[kind] = uncomputed
	}
	r.depth--
	r.low = min(outer, r.low)
	return value
}

// Cached returns the value and true if it was already computed
func (d *Descriptors) Cached(kind Descriptor) (string, bool) {
	if kind < 0 || kind >= descriptorCount || d.states[kind] != computed {
		return "", false
	}
	return d.values[kind], true
}
