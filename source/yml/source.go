// Package yml reads a model interchange document written in YAML and serves it as a source.Source.
package yml

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/modelgraph/source"
	"gopkg.in/yaml.v3"
)

// Source is a source.Source backed by a decoded YAML document
type Source struct {
	*source.Memory
	Name string
	URL  string
}

// Load downloads and decodes the document at URL; any afs supported scheme or a local path works
func Load(ctx context.Context, URL string) (*Source, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", URL, err)
	}
	result, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", URL, err)
	}
	result.URL = URL
	return result, nil
}

// Parse decodes a YAML document
func Parse(data []byte) (*Source, error) {
	document := &source.Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, err
	}
	if len(document.Packages) == 0 {
		return nil, fmt.Errorf("document has no packages")
	}
	return &Source{Memory: source.NewMemory(document), Name: document.Name}, nil
}

// ModelName returns the document name
func (s *Source) ModelName() string {
	return s.Name
}
