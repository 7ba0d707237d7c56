package interview

import (
	"context"
	"strings"
	"time"

	"github.com/talentscout/talentscout/internal/candidate"
	"github.com/talentscout/talentscout/internal/logger"
	"github.com/talentscout/talentscout/internal/questions"
	"github.com/talentscout/talentscout/internal/sentiment"
	"github.com/talentscout/talentscout/internal/translate"
	"go.uber.org/zap"
)

const defaultCallTimeout = 30 * time.Second

// QuestionSource produces the interview questions for a tech stack.
type QuestionSource interface {
	Generate(ctx context.Context, techStack, lang string) (*questions.Result, error)
}

// Runner owns the external collaborators and drives a session through its
// phases one synchronous step at a time. The Session itself stays a plain
// value; the Runner holds no per-session state.
type Runner struct {
	Questions  QuestionSource
	Translator translate.Translator
	Classifier sentiment.Classifier
	Logger     *zap.Logger

	// CallTimeout bounds each external call so a hung service cannot block
	// the wizard indefinitely. Zero means defaultCallTimeout.
	CallTimeout time.Duration
}

// Start validates the intake profile and moves a fresh session into the
// interviewing phase. lang localizes sentinel messages only. When the
// generator yields a sentinel instead of real questions, no session starts:
// the sentinel text is surfaced as a ValidationError and the caller stays on
// the intake screen. A generator transport failure propagates as-is.
func (r *Runner) Start(ctx context.Context, profile candidate.Profile, lang string) (*Session, error) {
	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	result, err := r.Questions.Generate(callCtx, profile.TechStack, lang)
	if err != nil {
		return nil, err
	}

	if result.Sentinel {
		reason := "no interview questions available"
		if len(result.Questions) > 0 {
			reason = result.Questions[0]
		}
		return nil, &ValidationError{Reason: reason}
	}

	session := New()
	session.profile = profile
	session.questions = result.Questions
	session.phase = PhaseInterviewing

	r.Logger.Info("interview started",
		zap.String(logger.FieldSession, session.id),
		zap.Int("questions", len(session.questions)),
	)

	return session, nil
}

// Submit accepts one answer for the current question: the raw text is
// translated to the base language, scored for sentiment, and appended as an
// immutable answer record. The last accepted answer completes the session.
// An empty answer is rejected without touching the session.
func (r *Runner) Submit(ctx context.Context, s *Session, rawAnswer string) error {
	if s.phase != PhaseInterviewing {
		return ErrInvalidState
	}

	if strings.TrimSpace(rawAnswer) == "" {
		return &ValidationError{Reason: "answer must not be empty"}
	}

	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrInvalidState
	}

	translateCtx, cancelTranslate := r.callContext(ctx)
	answer := r.Translator.Translate(translateCtx, rawAnswer, translate.BaseLanguage)
	cancelTranslate()

	classifyCtx, cancelClassify := r.callContext(ctx)
	label := r.Classifier.Classify(classifyCtx, answer)
	cancelClassify()

	s.answers = append(s.answers, candidate.AnswerRecord{
		Question:  question,
		Answer:    answer,
		Sentiment: label,
	})
	s.index++

	r.Logger.Debug("answer recorded",
		zap.String(logger.FieldSession, s.id),
		zap.Int("question_index", s.index-1),
		zap.String("sentiment", string(label)),
	)

	if s.index == len(s.questions) {
		s.phase = PhaseComplete
		s.completedAt = time.Now().UTC()
		r.Logger.Info("interview complete",
			zap.String(logger.FieldSession, s.id),
			zap.Int("answers", len(s.answers)),
		)
	}

	return nil
}

// DisplayQuestion returns the current question translated into the display
// language. A projection for presentation only; stored state keeps the
// base-language text.
func (r *Runner) DisplayQuestion(ctx context.Context, s *Session, lang string) (string, bool) {
	question, ok := s.CurrentQuestion()
	if !ok {
		return "", false
	}

	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	return r.Translator.Translate(callCtx, question, lang), true
}

func (r *Runner) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
