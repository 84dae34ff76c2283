// Package parser extracts structured question records from raw model output.
//
// The model answers in prose with JSON-shaped fragments embedded in it, so
// extraction is pattern-based rather than a strict JSON parse: fragments with
// the exact expected field order match, everything else is skipped silently.
package parser

import (
	"regexp"
	"strings"

	"quizcraft/internal/domain"
)

var (
	mcqPattern = regexp.MustCompile(
		`(?s)\{\s*"question":\s*"([^"]*)",\s*` +
			`"option1":\s*"([^"]*)",\s*` +
			`"option2":\s*"([^"]*)",\s*` +
			`"option3":\s*"([^"]*)",\s*` +
			`"option4":\s*"([^"]*)",\s*` +
			`"answer":\s*"([^"]*)"\s*\}`)

	tfPattern = regexp.MustCompile(
		`(?s)\{\s*"question":\s*"([^"]*)",\s*` +
			`"answer":\s*"([^"]*)"\s*\}`)

	questionBoundary = regexp.MustCompile(`(?i)\*{0,2}\s*question\s*\*{0,2}\s*:`)
	answerBoundary   = regexp.MustCompile(`(?i)\*{0,2}\s*answer\s*\*{0,2}\s*:`)

	// List numbering the model puts on its own line before the next item,
	// e.g. "\n2." ahead of the following "Question:" label.
	trailingNumbering = regexp.MustCompile(`\n\s*\d+\s*[.)]?\s*$`)
)

// Parse extracts every question record matching the expected shape for the
// given type. Malformed or unrelated text yields zero records, never an
// error; the retry loop decides what to do with an empty result.
func Parse(raw string, questionType domain.QuestionType) []domain.Question {
	switch {
	case questionType.IsChoice():
		return parseChoice(raw)
	case questionType == domain.QuestionTypeTrueFalse:
		return parseTrueFalse(raw)
	default:
		return parseFreeform(raw)
	}
}

func parseChoice(raw string) []domain.Question {
	var questions []domain.Question
	for _, m := range mcqPattern.FindAllStringSubmatch(raw, -1) {
		questions = append(questions, domain.Question{
			Description: m[1],
			Options:     []string{m[2], m[3], m[4], m[5]},
			Answer:      m[6],
		})
	}
	return questions
}

func parseTrueFalse(raw string) []domain.Question {
	var questions []domain.Question
	for _, m := range tfPattern.FindAllStringSubmatch(raw, -1) {
		questions = append(questions, domain.Question{
			Description: m[1],
			Answer:      m[2],
		})
	}
	return questions
}

// parseFreeform splits the text at "Question:" boundaries and then at the
// first "Answer:" boundary within each segment. Emphasis markers the model
// adds around the labels and values are cosmetic and stripped.
func parseFreeform(raw string) []domain.Question {
	segments := questionBoundary.Split(raw, -1)
	if len(segments) < 2 {
		return nil
	}

	var questions []domain.Question
	for _, segment := range segments[1:] {
		parts := answerBoundary.Split(segment, 2)
		description := cleanSegment(parts[0])
		if description == "" {
			continue
		}
		q := domain.Question{Description: description}
		if len(parts) == 2 {
			q.Answer = cleanSegment(parts[1])
		}
		questions = append(questions, q)
	}
	return questions
}

func cleanSegment(s string) string {
	s = trailingNumbering.ReplaceAllString(s, "")
	return strings.Trim(s, "*_ \t\r\n")
}
