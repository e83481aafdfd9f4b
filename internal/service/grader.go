package service

import (
	"fmt"
	"strings"

	"github.com/adityar2309/ttsai-progress/internal/models"
	"github.com/adityar2309/ttsai-progress/pkg/textdiff"
)

// translationPassRatio is the similarity at which a free-text
// translation counts as correct. Partial credit is granted below it.
const translationPassRatio = 80

// Grade scores one submitted answer against one question. It is pure;
// persisting the outcome belongs to the caller.
func Grade(question models.QuizQuestion, answer string) (bool, int, error) {
	switch question.Kind {
	case models.QuestionMultipleChoice, models.QuestionConversation, models.QuestionGrammar:
		if answer == question.CorrectAnswer {
			return true, question.Points, nil
		}
		return false, 0, nil

	case models.QuestionFillBlank:
		if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(question.CorrectAnswer)) {
			return true, question.Points, nil
		}
		return false, 0, nil

	case models.QuestionTranslation:
		ratio := textdiff.FoldRatio(answer, question.CorrectAnswer)
		points := question.Points * ratio / 100
		if points < 0 {
			points = 0
		}
		if points > question.Points {
			points = question.Points
		}
		return ratio >= translationPassRatio, points, nil

	default:
		return false, 0, fmt.Errorf("%w: unknown question kind %q", models.ErrValidation, question.Kind)
	}
}
