package builder

import (
	"fmt"
	"github.com/viant/modelgraph/diag"
	"github.com/viant/modelgraph/graph"
	"github.com/viant/modelgraph/source"
	"log/slog"
)

type queuedPackage struct {
	parentID string
	record   *source.Package
}

// buildPackages walks the package tree breadth first, registering packages and their classes
func (s *session) buildPackages() error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	roots, err := s.src.Roots(s.ctx)
	if err != nil {
		return fmt.Errorf("failed to read root packages: %w", err)
	}
	queue := make([]queuedPackage, 0, len(roots))
	for _, record := range roots {
		queue = append(queue, queuedPackage{record: record})
	}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		pkg, ok := s.addPackage(item)
		if !ok {
			continue
		}
		if err = s.registerClasses(pkg); err != nil {
			return err
		}
		if err = s.ctx.Err(); err != nil {
			return err
		}
		children, err := s.src.Children(s.ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("failed to read child packages of %s: %w", pkg.ID, err)
		}
		for _, child := range children {
			queue = append(queue, queuedPackage{parentID: pkg.ID, record: child})
		}
	}
	return nil
}

func (s *session) addPackage(item queuedPackage) (*graph.Package, bool) {
	record := item.record
	if record == nil {
		return nil, false
	}
	if record.ID == "" || record.Name == "" {
		s.report(diag.Warning, diag.MalformedRecord, s.graph.PackagePath(item.parentID), "package", fmt.Sprintf("id=%q name=%q", record.ID, record.Name))
		return nil, false
	}
	if s.config.IsExcluded(record.Name) {
		s.logger.Debug("Excluded package", slog.String("package", record.Name), slog.String("id", record.ID))
		return nil, false
	}
	pkg := &graph.Package{
		Element:  newElement(record.ID, record.Name, record.Stereotypes, record.Notes, record.Alias, record.Tags),
		ParentID: item.parentID,
	}
	if !s.graph.AddPackage(pkg) {
		s.report(diag.Warning, diag.MalformedRecord, s.graph.PackagePath(record.ID), "package", "duplicate id "+record.ID)
		return nil, false
	}
	s.metrics.entities.WithLabelValues("package").Inc()
	return pkg, true
}
