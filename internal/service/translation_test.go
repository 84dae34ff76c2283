package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quizcraft/internal/domain"
	"quizcraft/internal/service"

	"github.com/stretchr/testify/assert"
)

// MockTranslator for domain.Translator interface
type MockTranslator struct {
	TranslateFunc func(ctx context.Context, text string, targetCode string) (string, error)
}

func (m *MockTranslator) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, targetCode)
	}
	panic("MockTranslator.TranslateFunc not implemented")
}

func prefixTranslator(prefix string) *MockTranslator {
	return &MockTranslator{
		TranslateFunc: func(_ context.Context, text string, _ string) (string, error) {
			return prefix + text, nil
		},
	}
}

func TestTranslateQuestions_PositionalCorrespondence(t *testing.T) {
	svc := service.NewTranslationService(prefixTranslator("[pa] "))

	questions := make([]domain.Question, 10)
	for i := range questions {
		questions[i] = domain.Question{
			Description: fmt.Sprintf("Q%d", i),
			Answer:      fmt.Sprintf("A%d", i),
		}
	}

	translated := svc.TranslateQuestions(context.Background(), questions, "Punjabi")

	assert.Len(t, translated, len(questions))
	for i := range questions {
		assert.Equal(t, "[pa] "+questions[i].Description, translated[i].Description)
		assert.Equal(t, "[pa] "+questions[i].Answer, translated[i].Answer)
	}
}

func TestTranslateQuestions_ResolvesPunjabiViaAliasTable(t *testing.T) {
	var gotCode string
	translator := &MockTranslator{
		TranslateFunc: func(_ context.Context, text string, targetCode string) (string, error) {
			gotCode = targetCode
			return text, nil
		},
	}
	svc := service.NewTranslationService(translator)

	svc.TranslateQuestions(context.Background(), []domain.Question{{Description: "Q"}}, "Punjabi")

	assert.Equal(t, "pa", gotCode)
}

func TestTranslateQuestions_OptionsTranslatedInOrder(t *testing.T) {
	svc := service.NewTranslationService(prefixTranslator("t:"))

	questions := []domain.Question{{
		Description: "Q",
		Options:     []string{"one", "two", "three", "four"},
		Answer:      "two",
	}}

	translated := svc.TranslateQuestions(context.Background(), questions, "German")

	assert.Equal(t, []string{"t:one", "t:two", "t:three", "t:four"}, translated[0].Options)
	assert.Equal(t, "t:two", translated[0].Answer)
}

func TestTranslateQuestions_ItemFailureFallsBackToOriginal(t *testing.T) {
	translator := &MockTranslator{
		TranslateFunc: func(_ context.Context, text string, _ string) (string, error) {
			if text == "Q1" {
				return "", errors.New("upstream hiccup")
			}
			return "ok:" + text, nil
		},
	}
	svc := service.NewTranslationService(translator)

	questions := []domain.Question{
		{Description: "Q0", Answer: "A0"},
		{Description: "Q1", Answer: "A1"},
		{Description: "Q2", Answer: "A2"},
	}

	translated := svc.TranslateQuestions(context.Background(), questions, "French")

	assert.Equal(t, "ok:Q0", translated[0].Description)
	assert.Equal(t, "Q1", translated[1].Description, "failed item keeps its original text")
	assert.Equal(t, "ok:A1", translated[1].Answer, "other fields of the item still translate")
	assert.Equal(t, "ok:Q2", translated[2].Description)
}

func TestTranslateQuestions_UnsupportedLanguagePassesThrough(t *testing.T) {
	translator := &MockTranslator{
		TranslateFunc: func(_ context.Context, _ string, _ string) (string, error) {
			t.Fatal("translator must not be called for an unsupported language")
			return "", nil
		},
	}
	svc := service.NewTranslationService(translator)

	questions := []domain.Question{{Description: "Q0", Answer: "A0"}}
	translated := svc.TranslateQuestions(context.Background(), questions, "Not A Language At All")

	assert.Equal(t, questions, translated)
}

func TestTranslateQuestions_EmptyFieldsStayEmpty(t *testing.T) {
	calls := 0
	translator := &MockTranslator{
		TranslateFunc: func(_ context.Context, text string, _ string) (string, error) {
			calls++
			return "t:" + text, nil
		},
	}
	svc := service.NewTranslationService(translator)

	translated := svc.TranslateQuestions(context.Background(),
		[]domain.Question{{Description: "essay prompt"}}, "Hindi")

	assert.Equal(t, "t:essay prompt", translated[0].Description)
	assert.Empty(t, translated[0].Answer)
	assert.Equal(t, 1, calls, "empty fields are not sent upstream")
}
