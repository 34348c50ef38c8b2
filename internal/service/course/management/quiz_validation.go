package management

import (
	"fmt"
	"strings"

	"github.com/rezaali07/NextLearn-backend/internal/app_errors"
	"github.com/rezaali07/NextLearn-backend/internal/models"
)

// ValidateQuiz checks a quiz payload before it is persisted. The first
// failing question aborts validation and its text (or position, when the
// text itself is missing) is named in the returned error. All errors wrap
// app_errors.ErrQuizInvalid.
func ValidateQuiz(quiz models.Quiz) error {
	if strings.TrimSpace(quiz.Title) == "" {
		return fmt.Errorf("%w: quiz must include a title", app_errors.ErrQuizInvalid)
	}
	if len(quiz.Questions) == 0 {
		return fmt.Errorf("%w: quiz must include at least one question", app_errors.ErrQuizInvalid)
	}

	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w: question %d must have text", app_errors.ErrQuizInvalid, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %q must have at least 2 options", app_errors.ErrQuizInvalid, q.Text)
		}
		seen := make(map[string]struct{}, len(q.Options))
		for _, option := range q.Options {
			if _, dup := seen[option]; dup {
				return fmt.Errorf("%w: question %q has duplicate options", app_errors.ErrQuizInvalid, q.Text)
			}
			seen[option] = struct{}{}
		}
		if q.CorrectAnswer == "" {
			return fmt.Errorf("%w: question %q must have a correct answer", app_errors.ErrQuizInvalid, q.Text)
		}
		if _, ok := seen[q.CorrectAnswer]; !ok {
			return fmt.Errorf("%w: correct answer must be one of the options in question %q", app_errors.ErrQuizInvalid, q.Text)
		}
	}
	return nil
}
