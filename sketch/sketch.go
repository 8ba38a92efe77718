package sketch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrNoLines is returned by Validate when the sketch has no line.
	ErrNoLines = errors.New("sketch: no detected shape, add at least one line")
	// ErrTooFewNodes is returned by Validate when fewer than two nodes exist.
	ErrTooFewNodes = errors.New("sketch: insufficient number of nodes, add at least two")
	// ErrUnknownNode indicates an identifier that names no node.
	ErrUnknownNode = errors.New("sketch: unknown node")
	// ErrDuplicateLine indicates a line that already exists in either direction.
	ErrDuplicateLine = errors.New("sketch: duplicate line")
	// ErrSelfLine indicates a line whose endpoints are the same node.
	ErrSelfLine = errors.New("sketch: line from a node to itself")
	// ErrBadID indicates a node identifier that is not a UUID.
	ErrBadID = errors.New("sketch: node id is not a UUID")
)

// Point is a node position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line joins two nodes by identifier.
type Line struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Sketch is a mutable drawing. The zero value is not usable; call New.
// A Sketch is not safe for concurrent mutation.
type Sketch struct {
	order []string
	nodes map[string]Point
	lines []Line
}

// New returns an empty sketch.
func New() *Sketch {
	return &Sketch{nodes: make(map[string]Point)}
}

// AddNode places a node at (x, y) under a fresh random identifier.
func (s *Sketch) AddNode(x, y float64) string {
	id := uuid.NewString()
	s.order = append(s.order, id)
	s.nodes[id] = Point{X: x, Y: y}

	return id
}

// PutNode places or moves the node id. New identifiers must be UUIDs.
func (s *Sketch) PutNode(id string, x, y float64) error {
	if _, ok := s.nodes[id]; !ok {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("sketch: PutNode(%q): %w", id, ErrBadID)
		}
		s.order = append(s.order, id)
	}
	s.nodes[id] = Point{X: x, Y: y}

	return nil
}

// AddLine joins from and to.
func (s *Sketch) AddLine(from, to string) error {
	for _, id := range [2]string{from, to} {
		if _, ok := s.nodes[id]; !ok {
			return fmt.Errorf("sketch: AddLine(%q): %w", id, ErrUnknownNode)
		}
	}
	if from == to {
		return fmt.Errorf("sketch: AddLine(%q): %w", from, ErrSelfLine)
	}
	if s.HasLine(from, to) {
		return fmt.Errorf("sketch: AddLine(%q, %q): %w", from, to, ErrDuplicateLine)
	}
	s.lines = append(s.lines, Line{From: from, To: to})

	return nil
}

// HasLine reports whether a line joins a and b in either direction.
func (s *Sketch) HasLine(a, b string) bool {
	for _, l := range s.lines {
		if (l.From == a && l.To == b) || (l.From == b && l.To == a) {
			return true
		}
	}

	return false
}

// RemoveNode deletes id together with every line touching it.
func (s *Sketch) RemoveNode(id string) error {
	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("sketch: RemoveNode(%q): %w", id, ErrUnknownNode)
	}
	delete(s.nodes, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	s.lines = slices.DeleteFunc(s.lines, func(l Line) bool { return l.From == id || l.To == id })

	return nil
}

// Clear removes every node and line.
func (s *Sketch) Clear() {
	s.order = nil
	s.lines = nil
	clear(s.nodes)
}

// Node returns the position of id.
func (s *Sketch) Node(id string) (Point, bool) {
	p, ok := s.nodes[id]
	return p, ok
}

// NodeIDs returns node identifiers in insertion order.
func (s *Sketch) NodeIDs() []string { return slices.Clone(s.order) }

// Lines returns the lines in insertion order.
func (s *Sketch) Lines() []Line { return slices.Clone(s.lines) }

// Validate reports whether the sketch can be solved.
func (s *Sketch) Validate() error {
	if len(s.lines) < 1 {
		return ErrNoLines
	}
	if len(s.order) < 2 {
		return ErrTooFewNodes
	}

	return nil
}
