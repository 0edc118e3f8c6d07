package domain

import (
	"math"
	"time"
)

// Score is derived from a quiz and its selections; it is never stored.
type Score struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// CalculateScore counts the selections that equal the question's answer.
// Missing selections count as wrong. An empty quiz has no defined percentage
// and yields ErrEmptyQuiz.
func CalculateScore(quiz Quiz, selected map[int]Letter) (Score, error) {
	total := quiz.Len()
	if total == 0 {
		return Score{}, ErrEmptyQuiz
	}
	correct := 0
	for i, q := range quiz.Questions {
		if l, ok := selected[i]; ok && l == q.Answer {
			correct++
		}
	}
	return Score{
		Correct:    correct,
		Total:      total,
		Percentage: int(math.Round(float64(correct) / float64(total) * 100)),
	}, nil
}

// QuestionReview is the per-question outcome shown after submission.
type QuestionReview struct {
	Index       int    `json:"index"`
	Selected    Letter `json:"selected,omitempty"`
	Answer      Letter `json:"answer"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// Review lists the outcome of every question in quiz order.
func Review(quiz Quiz, selected map[int]Letter) []QuestionReview {
	reviews := make([]QuestionReview, 0, quiz.Len())
	for i, q := range quiz.Questions {
		l := selected[i]
		reviews = append(reviews, QuestionReview{
			Index:       i,
			Selected:    l,
			Answer:      q.Answer,
			Correct:     l != "" && l == q.Answer,
			Explanation: q.Explanation,
		})
	}
	return reviews
}

// ResultMessage buckets a percentage for display.
type ResultMessage string

const (
	MessagePerfect          ResultMessage = "PERFECT"
	MessageExcellent        ResultMessage = "EXCELLENT"
	MessageGood             ResultMessage = "GOOD"
	MessageNeedsImprovement ResultMessage = "NEEDS_IMPROVEMENT"
)

var resultMessageText = map[ResultMessage]string{
	MessagePerfect:          "Perfect score! You have this material down.",
	MessageExcellent:        "Excellent! Just a little more to go.",
	MessageGood:             "Good effort. Read the explanations and try again.",
	MessageNeedsImprovement: "Keep going. Review your notes and take another shot.",
}

// Text returns the display text of the bucket.
func (m ResultMessage) Text() string {
	return resultMessageText[m]
}

// MessageFor picks the bucket for percentage. Thresholds are inclusive lower
// bounds checked from the top.
func MessageFor(percentage int) ResultMessage {
	switch {
	case percentage == 100:
		return MessagePerfect
	case percentage >= 66:
		return MessageExcellent
	case percentage >= 33:
		return MessageGood
	default:
		return MessageNeedsImprovement
	}
}

// DifficultyStyle is the display label and style classes of a difficulty.
type DifficultyStyle struct {
	Label   string `json:"label"`
	Style   string `json:"style"`
	Hovered string `json:"hovered"`
}

var difficultyStyles = map[Difficulty]DifficultyStyle{
	DifficultyBeginner:     {Label: "Easy 📚", Style: "bg-amber-500", Hovered: "hover:bg-amber-600"},
	DifficultyIntermediate: {Label: "Normal 🧠", Style: "bg-teal-500", Hovered: "hover:bg-teal-600"},
	DifficultyAdvanced:     {Label: "Hard 🚀", Style: "bg-violet-500", Hovered: "hover:bg-violet-600"},
}

// StyleFor returns the display style of d. Unknown difficulties get an empty style.
func StyleFor(d Difficulty) DifficultyStyle {
	return difficultyStyles[d]
}

// CountUpFrames returns the values of the cosmetic percentage animation, one per
// tick of interval, ending exactly at target. It never changes the score.
func CountUpFrames(target int, duration, interval time.Duration) []int {
	if target <= 0 || interval <= 0 || duration <= interval {
		return []int{target}
	}
	steps := float64(duration) / float64(interval)
	increment := float64(target) / steps
	frames := make([]int, 0, int(steps)+1)
	current := 0.0
	for {
		current += increment
		if current >= float64(target) {
			return append(frames, target)
		}
		frames = append(frames, int(math.Round(current)))
	}
}
