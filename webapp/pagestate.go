package webapp

import (
	"github.com/nuvance/showcase/portfolio"
)

// phase is the lifecycle phase of the home page
type phase int

const (
	phaseLoading phase = iota
	phaseLoaded
	phaseError
)

func (p phase) String() string {
	switch p {
	case phaseLoading:
		return "loading"
	case phaseLoaded:
		return "loaded"
	case phaseError:
		return "error"
	default:
		return "unknown"
	}
}

// pageState holds what the home page knows about the project list.
// The zero value is loading; it settles exactly once.
type pageState struct {
	settled  bool
	err      string
	projects []portfolio.Project
}

func newPageState() pageState {
	return pageState{}
}

// resolve records the outcome of the fetch. Calls after the first are ignored.
func (s *pageState) resolve(projects []portfolio.Project, err error) {
	if s.settled {
		return
	}
	s.settled = true

	if err != nil {
		s.err = portfolio.FailureMessage
		s.projects = nil
		return
	}
	s.projects = projects
}

// phase reports the current phase
func (s pageState) phase() phase {
	switch {
	case !s.settled:
		return phaseLoading
	case s.err != "":
		return phaseError
	default:
		return phaseLoaded
	}
}

func (s pageState) showsLoading() bool {
	return !s.settled
}

func (s pageState) showsError() bool {
	return s.err != ""
}
