package graph

// Navigability describes the traversal direction of an association
type Navigability int

const (
	NavigabilityUnspecified Navigability = iota
	NavigableBoth
	SourceToTarget
	TargetToSource
)

func (n Navigability) String() string {
	switch n {
	case NavigableBoth:
		return "both"
	case SourceToTarget:
		return "source->target"
	case TargetToSource:
		return "target->source"
	}
	return "unspecified"
}

// ParseNavigability resolves direction text used by modelling tools
func ParseNavigability(text string) Navigability {
	switch NormalizeStereotype(text) {
	case "bidirectional", "both", "bi":
		return NavigableBoth
	case "sourcedestination", "sourcetarget", "source>destination", "source>target":
		return SourceToTarget
	case "destinationsource", "targetsource", "destination>source", "target>source":
		return TargetToSource
	}
	return NavigabilityUnspecified
}

// Association connects two classes through two end properties it owns
type Association struct {
	Element
	Navigability       Navigability
	Ends               [2]*Property // 0 source (client) end, 1 target (supplier) end
	AssociationClassID string
}

// Opposite returns the other end
func (a *Association) Opposite(end *Property) *Property {
	switch end {
	case a.Ends[0]:
		return a.Ends[1]
	case a.Ends[1]:
		return a.Ends[0]
	}
	return nil
}
