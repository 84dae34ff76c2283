package dto

import "quizcraft/internal/domain"

// GenerateQuestionsRequest mirrors the JSON contract the learning-platform
// client already speaks. languageName1 selects the optional second result
// language; type accepts mcq, true_false (or legacy "true false"), short, essay.
type GenerateQuestionsRequest struct {
	ClassName      string `json:"className" validate:"required"`
	CourseName     string `json:"courseName" validate:"required"`
	SectionName    string `json:"sectionName" validate:"required"`
	SubSectionName string `json:"subSectionName" validate:"required"`
	LanguageName   string `json:"languageName" validate:"required"`
	LanguageName1  string `json:"languageName1"`
	Type           string `json:"type" validate:"required"`
	DifficultyName string `json:"difficultyName" validate:"required"`
}

// QuestionResponse represents a generated question in the API response
type QuestionResponse struct {
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer,omitempty"`
}

// GenerateQuestionsResponse is the success payload. Result1 is present only
// when a translation language was supplied; Result1[i] translates Result[i].
type GenerateQuestionsResponse struct {
	Result  []QuestionResponse `json:"result"`
	Result1 []QuestionResponse `json:"result1,omitempty"`
	Message string             `json:"message"`
	Success bool               `json:"success"`
}

// ErrorResponse represents a failed request in the API response
type ErrorResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

// FromDomainQuestions maps domain questions into response items.
func FromDomainQuestions(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = QuestionResponse{
			Description: q.Description,
			Options:     q.Options,
			Answer:      q.Answer,
		}
	}
	return out
}
