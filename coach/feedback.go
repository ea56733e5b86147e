package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-workoutcoach/models"

	log "github.com/sirupsen/logrus"
)

const (
	NoWorkoutsFeedback       = "You have not logged workouts yet. Log a few sessions and try again for feedback."
	CouldNotGenerateFeedback = "Sorry, I could not generate feedback right now."
	LocalFallbackFeedback    = "AI coach is temporarily unavailable. For now, aim for 3-4 workouts per week, " +
		"keep most sessions easy, and add one harder run or gym session."

	systemPrompt = "You are a friendly but honest running and fitness coach. " +
		"You look at a user's recent workout log and give concise, practical feedback."
	instructions = "Please give 3-5 short bullet points of feedback:\n" +
		"- 1-2 positives\n" +
		"- 1-2 comments about trends (consistency, volume, intensity)\n" +
		"- 1-2 concrete suggestions for the next week.\n" +
		"Keep it under 120 words. Write in a friendly, encouraging tone."
)

var ErrFeedbackFailed = errors.New("failed to generate feedback")

type Source string

const (
	SourceGenerated  Source = "generated"
	SourceFallback   Source = "fallback"
	SourceEmpty      Source = "empty"
	SourceNoWorkouts Source = "no_workouts"
)

// Feedback is the coaching text handed back to the user. Source is only
// for logs and metrics; callers answer every source the same way.
type Feedback struct {
	Text   string
	Source Source
}

type Coach struct {
	generator Generator
	timeout   time.Duration
}

// NewCoach builds a Coach. A zero timeout leaves the call bounded only by
// the caller's context.
func NewCoach(generator Generator, timeout time.Duration) *Coach {
	return &Coach{
		generator: generator,
		timeout:   timeout,
	}
}

// Feedback produces coaching text for workouts, which should be the most
// recent ones, newest first. Quota exhaustion is answered with a local
// fallback text; every other generation failure wraps ErrFeedbackFailed.
// The generator is called at most once.
func (c *Coach) Feedback(ctx context.Context, workouts []models.Workout) (Feedback, error) {
	if len(workouts) == 0 {
		return Feedback{Text: NoWorkoutsFeedback, Source: SourceNoWorkouts}, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.generator.Generate(ctx, BuildPrompt(BuildWorkoutSummary(workouts)))
	if err != nil {
		if IsQuotaExhausted(err) {
			log.Warnf("coach: generation quota exhausted, using local fallback: %s", err)
			return Feedback{Text: LocalFallbackFeedback, Source: SourceFallback}, nil
		}
		return Feedback{}, fmt.Errorf("%w: %w", ErrFeedbackFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Feedback{Text: CouldNotGenerateFeedback, Source: SourceEmpty}, nil
	}
	return Feedback{Text: text, Source: SourceGenerated}, nil
}

// BuildPrompt returns the system and user messages for a workout summary.
func BuildPrompt(summary string) []Message {
	return []Message{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: "Here is the user's recent workout log:\n\n" + summary + "\n\n" + instructions},
	}
}
