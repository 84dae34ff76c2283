package service

import (
	"context"

	"quizcraft/internal/domain"
	"quizcraft/internal/language"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// translationConcurrency bounds the in-flight translate calls per request.
const translationConcurrency = 4

// TranslationService defines the interface for the translation fan-out.
type TranslationService interface {
	// TranslateQuestions returns a slice positionally aligned with questions:
	// element i is the translation of questions[i]. Translation is best-effort;
	// an unsupported language or a failing item degrades to the original text.
	TranslateQuestions(ctx context.Context, questions []domain.Question, targetLanguage string) []domain.Question
}

type translationService struct {
	translator domain.Translator
}

// NewTranslationService creates a new translationService instance.
func NewTranslationService(translator domain.Translator) TranslationService {
	return &translationService{translator: translator}
}

// TranslateQuestions resolves the target language once, then translates every
// field of every question. Workers write into an index-addressed slice so the
// positional correspondence with the input survives the concurrency.
func (s *translationService) TranslateQuestions(ctx context.Context, questions []domain.Question, targetLanguage string) []domain.Question {
	code, ok := language.Resolve(targetLanguage)
	if !ok {
		logger.Get().Warn("Translation language not supported, passing originals through",
			zap.String("language", targetLanguage))
		return append([]domain.Question(nil), questions...)
	}

	translated := make([]domain.Question, len(questions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(translationConcurrency)

	for i, q := range questions {
		g.Go(func() error {
			item := domain.Question{
				Description: s.translateOrFallback(gctx, q.Description, code),
				Answer:      s.translateOrFallback(gctx, q.Answer, code),
			}
			if len(q.Options) > 0 {
				item.Options = make([]string, len(q.Options))
				for j, option := range q.Options {
					item.Options[j] = s.translateOrFallback(gctx, option, code)
				}
			}
			translated[i] = item
			// Item failures already degraded to the original text; never fail
			// the group, a cancelled sibling would lose the whole batch.
			return nil
		})
	}
	_ = g.Wait()

	return translated
}

func (s *translationService) translateOrFallback(ctx context.Context, text string, code string) string {
	if text == "" {
		return ""
	}
	out, err := s.translator.Translate(ctx, text, code)
	if err != nil {
		logger.Get().Warn("Translation failed for item, keeping original text",
			zap.Error(err), zap.String("target", code))
		return text
	}
	return out
}
