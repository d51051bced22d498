// README: Turn-by-turn navigation session: lifecycle state machine and step progress.
package navigation

import (
	"errors"
	"sync"

	"wayfind/internal/maps"
)

// State is the session lifecycle phase.
type State string

const (
	StateIdle    State = "idle"    // no route loaded
	StateLoaded  State = "loaded"  // route present, not started
	StateActive  State = "active"  // stepping through instructions
	StateArrived State = "arrived" // final step completed
)

// AllowedTransitions lists the legal lifecycle moves. Everything else is
// rejected with ErrInvalidTransition.
var AllowedTransitions = map[State][]State{
	StateIdle:    {StateLoaded},
	StateLoaded:  {StateActive, StateIdle},
	StateActive:  {StateArrived, StateLoaded, StateIdle},
	StateArrived: {StateLoaded, StateIdle},
}

var (
	ErrNoSteps           = errors.New("navigation: route has no steps")
	ErrInvalidTransition = errors.New("navigation: invalid state transition")
)

// Session tracks progress through one route's steps. The zero value is a
// usable idle session.
type Session struct {
	mu      sync.Mutex
	route   maps.Route
	current int
	state   State
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Load installs a route and resets progress. An empty route leaves the
// session idle.
func (s *Session) Load(route maps.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.route = route
	s.current = 0
	if len(route.Steps) == 0 {
		s.state = StateIdle
		return
	}
	s.state = StateLoaded
}

// Start begins active navigation at the first step.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.route.Steps) == 0 {
		return ErrNoSteps
	}
	if !canTransition(s.state, StateActive) {
		return ErrInvalidTransition
	}
	s.state = StateActive
	s.current = 0
	return nil
}

// Advance moves to the next step. Reaching the final step marks arrival:
// the final instruction is the destination, so there is nothing left to
// navigate once it is current. Calls outside the active state are rejected.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrInvalidTransition
	}
	if s.current < len(s.route.Steps)-1 {
		s.current++
	}
	if s.current >= len(s.route.Steps)-1 {
		s.state = StateArrived
	}
	return nil
}

// Reset returns to the loaded state (or idle when no route is present)
// with progress cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = 0
	if len(s.route.Steps) == 0 {
		s.state = StateIdle
		return
	}
	s.state = StateLoaded
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentStep returns the step the user is on. ok is false when no route
// is loaded.
func (s *Session) CurrentStep() (maps.RouteStep, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.route.Steps) == 0 {
		return maps.RouteStep{}, false
	}
	return s.route.Steps[s.current], true
}

// ProgressPercent reports distance-weighted progress: the share of the
// route's total distance covered by steps already completed. Arrival pins
// it to 100.
func (s *Session) ProgressPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateArrived {
		return 100
	}
	total := 0.0
	for _, st := range s.route.Steps {
		total += st.DistanceKm
	}
	if total <= 0 {
		return 0
	}
	done := 0.0
	for _, st := range s.route.Steps[:s.current] {
		done += st.DistanceKm
	}
	pct := done / total * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Route returns the loaded route.
func (s *Session) Route() maps.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

func canTransition(from, to State) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
