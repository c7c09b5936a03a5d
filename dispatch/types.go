package dispatch

import "github.com/arcweave/graphpipe/core"

// Type is one of the five fixed algorithm tags.
type Type int

const (
	TypeInvalid Type = iota
	TypeEuler
	TypeMaxFlow
	TypeMST
	TypeMaxClique
	TypeCliqueCount
)

func (t Type) String() string {
	switch t {
	case TypeEuler:
		return "EULER"
	case TypeMaxFlow:
		return "MAX_FLOW"
	case TypeMST:
		return "MST"
	case TypeMaxClique:
		return "MAX_CLIQUE"
	case TypeCliqueCount:
		return "CLIQUE_COUNT"
	default:
		return "INVALID"
	}
}

// Strategy is one registered algorithm record: the wire id and type tag
// it answers to, a human-readable name and description, and the
// function that runs it against a graph, formatting a short
// human-readable result line.
type Strategy struct {
	ID          int
	Name        string
	Description string
	Type        Type
	Run         func(g *core.Graph) string
}
