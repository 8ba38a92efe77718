package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/onestroke/codec"
	"github.com/katalvlaran/onestroke/solver"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type solutionDoc struct {
	Steps int    `json:"steps" yaml:"steps"`
	Trail string `json:"trail" yaml:"trail"`
	Path  string `json:"path" yaml:"path"`
}

type resultDoc struct {
	Edges       string        `json:"edges" yaml:"edges"`
	Solutions   []solutionDoc `json:"solutions" yaml:"solutions"`
	StartsTried int           `json:"starts_tried" yaml:"starts_tried"`
	Complete    bool          `json:"complete" yaml:"complete"`
}

func newResultDoc(edges string, res *solver.Result) resultDoc {
	doc := resultDoc{
		Edges:       edges,
		Solutions:   make([]solutionDoc, len(res.Trails)),
		StartsTried: res.StartsTried,
		Complete:    res.Complete,
	}
	for i, t := range res.Trails {
		nodes := make([]string, len(t))
		for j, n := range t {
			nodes[j] = fmt.Sprint(n)
		}
		doc.Solutions[i] = solutionDoc{
			Steps: len(t),
			Trail: codec.FormatTrail(t),
			Path:  strings.Join(nodes, " -> "),
		}
	}

	return doc
}

func writeResult(w io.Writer, format string, doc resultDoc) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		enc.SetIndent(2)
		return enc.Encode(doc)
	case outputText:
		for i, s := range doc.Solutions {
			if _, err := fmt.Fprintf(w, "Solution #%d: steps %d: %s\n", i+1, s.Steps, s.Path); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d solutions\n", len(doc.Solutions))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
