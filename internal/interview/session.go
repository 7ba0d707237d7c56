package interview

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/talentscout/talentscout/internal/candidate"
)

// Phase is the lifecycle stage of an interview session.
type Phase string

const (
	PhaseIntake       Phase = "intake"
	PhaseInterviewing Phase = "interviewing"
	PhaseComplete     Phase = "complete"
)

// ErrInvalidState marks an operation invoked in the wrong session phase,
// such as taking a snapshot before completion. It signals a programming
// error in the caller, not user input.
var ErrInvalidState = errors.New("operation not valid in current session phase")

// ValidationError covers recoverable user-input problems: missing intake
// fields or an empty answer. The session is left unchanged and the user can
// retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Session is one candidate's end-to-end run from intake to completion. It is
// an explicit value owned by a single interactive run; all mutation goes
// through Runner operations. Invariants held between every operation:
// len(answers) == index, index <= len(questions), and the phase is complete
// exactly when index == len(questions) > 0.
type Session struct {
	id          string
	profile     candidate.Profile
	questions   []string
	index       int
	answers     []candidate.AnswerRecord
	phase       Phase
	completedAt time.Time
}

// New returns a fresh intake-phase session. Starting over after completion
// means constructing a new session; a finished one is never reused.
func New() *Session {
	return &Session{
		id:    uuid.NewString(),
		phase: PhaseIntake,
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Profile returns the candidate profile captured at intake.
func (s *Session) Profile() candidate.Profile { return s.profile }

// Index returns how many answers have been accepted so far.
func (s *Session) Index() int { return s.index }

// Questions returns a copy of the generated question list.
func (s *Session) Questions() []string {
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answers returns a copy of the accumulated answer records.
func (s *Session) Answers() []candidate.AnswerRecord {
	out := make([]candidate.AnswerRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// CurrentQuestion returns the base-language question awaiting an answer,
// or false when the session is not mid-interview.
func (s *Session) CurrentQuestion() (string, bool) {
	if s.phase != PhaseInterviewing || s.index >= len(s.questions) {
		return "", false
	}
	return s.questions[s.index], true
}

// Snapshot projects the completed session into a persistable record. Valid
// only once the session is complete; calling it repeatedly returns the same
// value. It never mutates the session.
func (s *Session) Snapshot() (candidate.Record, error) {
	if s.phase != PhaseComplete {
		return candidate.Record{}, ErrInvalidState
	}

	return candidate.Record{
		SessionID:     s.id,
		Info:          s.profile,
		Interview:     s.Answers(),
		CompletedDate: s.completedAt,
	}, nil
}
