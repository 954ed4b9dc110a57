// Package session owns the chat-style analysis interaction: an
// append-only message log plus an explicit idle/pending state machine
// around the single permitted in-flight analysis request.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
)

// FallbackSummary is shown on a successful analysis whose report carries
// no summary text.
const FallbackSummary = "Analysis complete. See the skill breakdown below."

// Submission preconditions.
var (
	ErrBusy            = errors.New("an analysis is already in flight")
	ErrBlankQuery      = errors.New("query must not be blank")
	ErrBlankTargetRole = errors.New("target role must not be blank")
)

// MessageKind classifies a chat log entry.
type MessageKind int

const (
	KindUser MessageKind = iota
	KindAssistant
	KindError
)

// Message is one entry in the append-only chat log. Messages are never
// mutated or reordered after insertion.
type Message struct {
	Kind      MessageKind
	Content   string
	Report    *gap.GapReport
	Timestamp time.Time
}

// State is the session's request state.
type State int

const (
	StateIdle State = iota
	StatePending
)

// Submission describes one accepted analysis request. The token ties the
// eventual settlement back to this submission so stale responses can be
// recognized and dropped.
type Submission struct {
	Token   string
	Request gap.AnalysisRequest
}

// Session drives one chat interaction for one profile. All mutations of
// the log and the state flag go through Begin and Resolve; callers run
// the network call themselves (as a tea.Cmd) between the two.
type Session struct {
	profile  gap.Profile
	useRAG   bool
	state    State
	messages []Message
	pending  string // token of the in-flight submission
}

// New creates a session for the given profile. The profile must carry a
// resolved id; the router guard upstream guarantees this.
func New(profile gap.Profile, useRAG bool) *Session {
	return &Session{profile: profile, useRAG: useRAG}
}

// Profile returns the profile this session analyzes.
func (s *Session) Profile() gap.Profile { return s.profile }

// Messages returns the log in insertion order.
func (s *Session) Messages() []Message { return s.messages }

// Busy reports whether a request is in flight.
func (s *Session) Busy() bool { return s.state == StatePending }

// Begin validates a submission, appends the optimistic user message, and
// moves the machine to pending. On any validation failure nothing is
// appended and the state is unchanged.
func (s *Session) Begin(query, targetRole string) (*Submission, error) {
	if s.state == StatePending {
		return nil, ErrBusy
	}

	query = strings.TrimSpace(query)
	targetRole = strings.TrimSpace(targetRole)
	if query == "" {
		return nil, ErrBlankQuery
	}
	if targetRole == "" {
		return nil, ErrBlankTargetRole
	}

	s.append(Message{Kind: KindUser, Content: query})
	s.state = StatePending
	s.pending = uuid.NewString()

	return &Submission{
		Token: s.pending,
		Request: gap.AnalysisRequest{
			UserProfileID: s.profile.ID,
			UserQuery:     query,
			TargetRole:    gap.TargetRole{RoleName: targetRole},
			UseRAG:        s.useRAG,
		},
	}, nil
}

// Resolve settles a submission. A token that does not match the current
// pending submission is stale and is dropped without touching any state.
// Otherwise exactly one assistant or error message is appended and the
// machine returns to idle; the pending flag clears on every accepted
// settlement path.
func (s *Session) Resolve(token string, report *gap.GapReport, err error) bool {
	if s.state != StatePending || token != s.pending {
		return false
	}

	s.state = StateIdle
	s.pending = ""

	if err != nil {
		s.append(Message{Kind: KindError, Content: analysis.MessageFor(err)})
		return true
	}

	content := FallbackSummary
	if report != nil && strings.TrimSpace(report.AnalysisSummary) != "" {
		content = report.AnalysisSummary
	}
	s.append(Message{Kind: KindAssistant, Content: content, Report: report})
	return true
}

// LatestReport returns the report of the most recent assistant message,
// or nil when no analysis has completed yet.
func (s *Session) LatestReport() *gap.GapReport {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Kind == KindAssistant && s.messages[i].Report != nil {
			return s.messages[i].Report
		}
	}
	return nil
}

func (s *Session) append(m Message) {
	m.Timestamp = time.Now()
	s.messages = append(s.messages, m)
}
