package builder

import (
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"slices"
)

// resolveDerivations creates supertype edges for every registered class. A relationship
// is handled from its client class only; suppliers outside the loaded model are skipped.
func (s *session) resolveDerivations() error {
	for _, class := range s.graph.Classes() {
		relationships, err := s.relationshipsOf(class.ID)
		if err != nil {
			return err
		}
		for _, relationship := range relationships {
			if relationship == nil || relationship.ClientID != class.ID {
				continue
			}
			switch relationship.Kind {
			case source.Generalization:
				s.graph.AddGeneralization(class.ID, relationship.SupplierID)
			case source.Realization:
				if s.isInheritingRealization(relationship) {
					s.graph.AddGeneralization(class.ID, relationship.SupplierID)
				}
			case source.Dependency:
				if relationship.SupplierID != "" && !slices.Contains(class.Dependencies, relationship.SupplierID) {
					class.Dependencies = append(class.Dependencies, relationship.SupplierID)
				}
			}
		}
	}
	return nil
}

// isInheritingRealization returns true if realizing the supplier amounts to specializing it
func (s *session) isInheritingRealization(relationship *source.Relationship) bool {
	if s.config.Inheritance.RealizationDisabled() {
		return false
	}
	supplier := s.graph.Class(relationship.SupplierID)
	return supplier != nil && supplier.Category == graph.Mixin
}
