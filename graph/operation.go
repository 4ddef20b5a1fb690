package graph

// Direction is a parameter direction
type Direction string

const (
	DirectionIn     Direction = "in"
	DirectionOut    Direction = "out"
	DirectionInOut  Direction = "inout"
	DirectionReturn Direction = "return"
)

// ReturnParameterName names the synthetic return slot of an operation
const ReturnParameterName = "return"

// Parameter is an operation parameter
type Parameter struct {
	ID           string
	Name         string
	TypeID       string
	TypeName     string
	Direction    Direction
	Multiplicity Multiplicity
}

// Operation is a class operation; Parameters always end with the return slot
type Operation struct {
	Element
	ClassID    string
	Parameters []*Parameter
}

// Return returns the synthetic return parameter
func (o *Operation) Return() *Parameter {
	if n := len(o.Parameters); n > 0 && o.Parameters[n-1].Direction == DirectionReturn {
		return o.Parameters[n-1]
	}
	return nil
}

// Arguments returns the declared parameters without the return slot
func (o *Operation) Arguments() []*Parameter {
	if o.Return() != nil {
		return o.Parameters[:len(o.Parameters)-1]
	}
	return o.Parameters
}
