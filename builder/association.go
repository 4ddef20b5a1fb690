package builder

import (
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	navigable    = "navigable"
	nonNavigable = "nonnavigable"
)

// buildAssociations registers associations reachable from registered classes. Each
// relationship is handled once, whichever of its ends is visited first.
func (s *session) buildAssociations() error {
	for _, class := range s.graph.Classes() {
		relationships, err := s.relationshipsOf(class.ID)
		if err != nil {
			return err
		}
		occurrences := map[string]int{}
		for _, relationship := range relationships {
			if relationship == nil || !isAssociation(relationship.Kind) {
				continue
			}
			id := relationship.ID
			if id == "" {
				id = s.repeatedID(associationID(relationship), occurrences)
			}
			if err = s.buildAssociation(relationship, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// repeatedID numbers the n-th occurrence of a synthetic id within one class's relationships.
// Both ends list the relationships in source order, so either end derives the same id.
func (s *session) repeatedID(id string, occurrences map[string]int) string {
	n := occurrences[id]
	occurrences[id]++
	if n == 0 {
		return id
	}
	result := id + "-" + strconv.Itoa(n)
	if !s.processed[result] {
		s.report(diag.Warning, diag.RepeatedRelationship, "", id, result)
	}
	return result
}

func isAssociation(kind source.RelationshipKind) bool {
	switch kind {
	case source.Association, source.Aggregation, source.Composition:
		return true
	}
	return false
}

// associationID returns the raw id or one derived from everything that tells two relationships apart
func associationID(relationship *source.Relationship) string {
	if relationship.ID != "" {
		return relationship.ID
	}
	parts := []string{string(relationship.Kind), relationship.Name, relationship.Direction, relationship.AssociationClassID, relationship.ClientID, relationship.SupplierID}
	for _, end := range []*source.End{&relationship.Client, &relationship.Supplier} {
		parts = append(parts, end.Role, end.Navigable, end.Cardinality, end.Aggregation, end.Qualifiers,
			strconv.FormatBool(end.Ordered), strconv.FormatBool(end.NonUnique), strconv.FormatBool(end.Derived), strconv.FormatBool(end.ReadOnly))
	}
	return graph.RelationshipID(parts...)
}

func (s *session) buildAssociation(relationship *source.Relationship, id string) error {
	if s.processed[id] || s.graph.HasAssociation(id) {
		return nil
	}
	s.processed[id] = true

	client := s.graph.Class(relationship.ClientID)
	supplier := s.graph.Class(relationship.SupplierID)
	if client == nil || supplier == nil {
		missing := relationship.ClientID
		if client != nil {
			missing = relationship.SupplierID
		}
		s.report(diag.Info, diag.EndpointOutOfScope, "", id, missing)
		return nil
	}

	association := &graph.Association{
		Element: newElement(id, relationship.Name, relationship.Stereotypes, relationship.Notes, "", relationship.Tags),
	}
	association.Ends[0] = s.newEnd(association, 0, &relationship.Client, client, supplier)
	association.Ends[1] = s.newEnd(association, 1, &relationship.Supplier, supplier, client)
	for _, end := range association.Ends {
		specs, err := s.constraintSpecs(end.ID)
		if err != nil {
			return err
		}
		end.ConstraintSpecs = specs
	}
	s.applyNavigability(association, relationship)
	s.applyAggregation(association, relationship)
	if class := s.graph.Class(relationship.AssociationClassID); class != nil {
		association.AssociationClassID = class.ID
	}
	s.graph.AddAssociation(association)
	s.metrics.entities.WithLabelValues("association").Inc()

	for _, end := range association.Ends {
		if !end.Navigable {
			end.Key = graph.NoSequence
			continue
		}
		s.graph.Class(end.ClassID).Attach(end)
		s.metrics.entities.WithLabelValues("property").Inc()
	}
	return nil
}

// newEnd builds the end property typed by target and belonging to the opposite class.
// Its id is the association id followed by "#0" for the client end or "#1" for the
// supplier end; constraint records name it as their owner.
func (s *session) newEnd(association *graph.Association, index int, record *source.End, target, opposite *graph.Class) *graph.Property {
	name := record.Role
	if name == "" {
		name = lowerFirst(target.Name)
	}
	result := &graph.Property{
		Element:       newElement(association.ID+"#"+strconv.Itoa(index), name, record.Stereotypes, record.Notes, record.Alias, record.Tags),
		ClassID:       opposite.ID,
		TypeID:        target.ID,
		TypeName:      target.Name,
		Derived:       record.Derived,
		Ordered:       record.Ordered,
		Unique:        !record.NonUnique,
		ReadOnly:      record.ReadOnly,
		Owned:         record.Owned,
		Aggregation:   aggregation(record.Aggregation),
		Qualifiers:    qualifiers(record.Qualifiers),
		AssociationID: association.ID,
		End:           index,
	}
	result.Multiplicity = s.multiplicity(record.Cardinality, s.graph.PropertyPath(result))
	return result
}

// applyNavigability resolves end navigability from the end flags first and the
// declared direction second. An end left unspecified by both is navigable when it
// has an explicit role name.
func (s *session) applyNavigability(association *graph.Association, relationship *source.Relationship) {
	declared := graph.ParseNavigability(relationship.Direction)
	records := [2]*source.End{&relationship.Client, &relationship.Supplier}
	for i, end := range association.Ends {
		switch graph.NormalizeStereotype(records[i].Navigable) {
		case navigable:
			end.Navigable = true
		case nonNavigable:
			end.Navigable = false
		default:
			switch declared {
			case graph.NavigableBoth:
				end.Navigable = true
			case graph.SourceToTarget:
				end.Navigable = i == 1
			case graph.TargetToSource:
				end.Navigable = i == 0
			default:
				end.Navigable = records[i].Role != ""
			}
		}
	}
	switch {
	case association.Ends[0].Navigable && association.Ends[1].Navigable:
		association.Navigability = graph.NavigableBoth
	case association.Ends[1].Navigable:
		association.Navigability = graph.SourceToTarget
	case association.Ends[0].Navigable:
		association.Navigability = graph.TargetToSource
	default:
		association.Navigability = declared
	}
}

// applyAggregation marks the supplier end as the whole of an aggregation or
// composition kind relationship unless an end states its aggregation explicitly
func (s *session) applyAggregation(association *graph.Association, relationship *source.Relationship) {
	if relationship.Client.Aggregation != "" || relationship.Supplier.Aggregation != "" {
		return
	}
	switch relationship.Kind {
	case source.Aggregation:
		association.Ends[1].Aggregation = graph.AggregationShared
	case source.Composition:
		association.Ends[1].Aggregation = graph.AggregationComposite
	}
}

func aggregation(text string) graph.Aggregation {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "shared":
		return graph.AggregationShared
	case "composite":
		return graph.AggregationComposite
	}
	return graph.AggregationNone
}

// qualifiers parses "name[:type]" items separated by commas
func qualifiers(text string) []graph.Qualifier {
	var result []graph.Qualifier
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, typeName, _ := strings.Cut(item, ":")
		result = append(result, graph.Qualifier{Name: strings.TrimSpace(name), TypeName: strings.TrimSpace(typeName)})
	}
	return result
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
