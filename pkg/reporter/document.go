package reporter

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/runner"
)

// Document is the structured form shared by the JSON and YAML reporters.
type Document struct {
	Version string       `json:"version" yaml:"version"`
	Files   []FileResult `json:"files" yaml:"files"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// FileResult is the structured form of one runner.FileOutcome.
type FileResult struct {
	Path        string       `json:"path" yaml:"path"`
	Properties  PropertyList `json:"properties,omitempty" yaml:"properties,omitempty"`
	Sources     []string     `json:"sources,omitempty" yaml:"sources,omitempty"`
	Conformed   *bool        `json:"conformed,omitempty" yaml:"conformed,omitempty"`
	Conformance string       `json:"conformance,omitempty" yaml:"conformance,omitempty"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary contains aggregate statistics.
type Summary struct {
	FilesResolved      int `json:"filesResolved" yaml:"filesResolved"`
	FilesErrored       int `json:"filesErrored" yaml:"filesErrored"`
	FilesNonConforming int `json:"filesNonConforming,omitempty" yaml:"filesNonConforming,omitempty"`
}

// PropertyList is an ordered property set. It encodes as an object (JSON)
// or mapping (YAML) whose keys keep resolution order.
type PropertyList []editorconfig.Property

// MarshalJSON implements json.Marshaler.
func (l PropertyList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, prop := range l {
		if idx > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (l PropertyList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, prop := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Value},
		)
	}
	return node, nil
}

// BuildDocument converts a runner result. Conformance fields are filled
// only when check is set.
func BuildDocument(result *runner.Result, check, sources bool) *Document {
	doc := &Document{
		Version: editorconfig.CurrentVersion().String(),
		Files:   make([]FileResult, 0),
	}
	if result == nil {
		return doc
	}

	doc.Files = make([]FileResult, 0, len(result.Files))
	for _, file := range result.Files {
		entry := FileResult{Path: file.Path}

		if file.Error != nil {
			entry.Error = file.Error.Error()
			doc.Files = append(doc.Files, entry)
			continue
		}

		entry.Properties = file.Properties.Entries()
		if sources {
			entry.Sources = file.Sources
		}
		if check {
			conformed := file.Conformance == nil
			entry.Conformed = &conformed
			if !conformed {
				entry.Conformance = file.Conformance.Reason
			}
		}
		doc.Files = append(doc.Files, entry)
	}

	doc.Summary = Summary{
		FilesResolved:      result.Stats.FilesResolved,
		FilesErrored:       result.Stats.FilesErrored,
		FilesNonConforming: result.Stats.FilesNonConforming,
	}
	return doc
}
