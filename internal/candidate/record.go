package candidate

import (
	"time"

	"github.com/talentscout/talentscout/internal/sentiment"
)

// AnswerRecord pairs one interview question with the candidate's answer and
// its sentiment label. Question and answer are stored in the base analysis
// language; display-time translation never touches these values.
type AnswerRecord struct {
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	Sentiment sentiment.Label `json:"sentiment"`
}

// Record is the persisted snapshot of a completed interview, keyed by the
// candidate's email in the store.
type Record struct {
	SessionID     string         `json:"session_id"`
	Info          Profile        `json:"info"`
	Interview     []AnswerRecord `json:"interview"`
	CompletedDate time.Time      `json:"completed_date"`
}
