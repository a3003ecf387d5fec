package generator

import (
	"time"
)

// OwnStanding is the club's current row in the league table, reduced to
// what the templates can reference.
type OwnStanding struct {
	Position int
	Points   int
}

// NextMatch is the next scheduled fixture.
type NextMatch struct {
	HomeTeam string
	AwayTeam string
	Date     time.Time
}

// Enrichment carries the optional supporting facts for rendering. Either
// field may be nil; the renderer substitutes fallback wording.
type Enrichment struct {
	OwnTeam   *OwnStanding
	NextMatch *NextMatch
}

// Rendered is the output of template rendering.
type Rendered struct {
	Title   string
	Content string
	Excerpt string
}
