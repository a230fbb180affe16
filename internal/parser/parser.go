package parser

import (
	"fmt"

	"exsum/internal/domain"
)

// New builds the parser registered under typ. An empty type selects "simple".
func New(typ string) (domain.Parser, error) {
	switch typ {
	case "simple", "":
		p, err := NewSimple()
		if err != nil {
			return nil, err
		}
		return p, nil
	case "json":
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown parser: %s", typ)
	}
}

// NeedsTitlePrep reports whether raw text for this parser needs its first line
// terminated before parsing. Pre-parsed documents already carry their title.
func NeedsTitlePrep(p domain.Parser) bool {
	_, ok := p.(*JSON)
	return !ok
}
