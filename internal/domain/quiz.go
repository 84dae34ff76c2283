package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// QuestionType identifies the shape of the questions a request asks for.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeTrueFalse QuestionType = "true_false"
	QuestionTypeShort     QuestionType = "short"
	QuestionTypeEssay     QuestionType = "essay"
)

// ParseQuestionType normalizes a client-supplied type string.
// The legacy client sends "true false" with a space; both spellings are accepted.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcq":
		return QuestionTypeMCQ, true
	case "true_false", "true false":
		return QuestionTypeTrueFalse, true
	case "short":
		return QuestionTypeShort, true
	case "essay":
		return QuestionTypeEssay, true
	}
	return "", false
}

// IsChoice reports whether questions of this type carry a fixed option set.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeMCQ
}

// IsFreeform reports whether the answer is unstructured text rather than
// one of a fixed option set or true/false.
func (t QuestionType) IsFreeform() bool {
	return t == QuestionTypeShort || t == QuestionTypeEssay
}

// QuizRequest is a validated question-generation request.
type QuizRequest struct {
	ClassName           string
	CourseName          string
	SectionName         string
	SubSectionName      string
	Language            string
	TranslationLanguage string
	Type                QuestionType
	Difficulty          string
}

// Fingerprint derives the novelty-tracking partition key for this request.
// Requests that differ in any topic field get independent seen-sets; the
// translation language is presentation-only and deliberately excluded.
func (r QuizRequest) Fingerprint() string {
	parts := []string{
		r.ClassName,
		r.CourseName,
		r.SectionName,
		r.SubSectionName,
		r.Language,
		string(r.Type),
		r.Difficulty,
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// Question is a single generated quiz item. Options is populated for MCQ
// only and always holds exactly four entries. Answer is the correct option's
// text, never its label.
type Question struct {
	Description string
	Options     []string
	Answer      string
}

// ResultSet pairs the generated questions with their optional translations.
// When Translated is non-nil it has the same length as Original and
// Translated[i] is the translation of Original[i].
type ResultSet struct {
	Original   []Question
	Translated []Question
}
