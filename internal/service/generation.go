package service

import (
	"context"
	"time"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/logger"
	"quizcraft/internal/parser"
	"quizcraft/internal/prompt"

	"go.uber.org/zap"
)

// GenerationService defines the interface for the question-generation pipeline.
type GenerationService interface {
	// GenerateQuestions runs the retry loop for one request and returns the
	// accepted novel questions, translated when the request asks for it.
	GenerateQuestions(ctx context.Context, req domain.QuizRequest) (*domain.ResultSet, error)
}

// generationService implements GenerationService. It orchestrates prompt
// construction, the generation call, parsing, novelty filtering against the
// seen-store, and the optional translation fan-out.
type generationService struct {
	generator   domain.TextGenerator
	store       domain.SeenStore
	translation TranslationService
	cfg         config.QuizConfig
}

// NewGenerationService creates a new generationService instance.
func NewGenerationService(
	generator domain.TextGenerator,
	store domain.SeenStore,
	translation TranslationService,
	cfg config.QuizConfig,
) GenerationService {
	return &generationService{
		generator:   generator,
		store:       store,
		translation: translation,
		cfg:         cfg,
	}
}

// GenerateQuestions retries generation until at least one novel question is
// accepted or the attempt budget runs out. The loop bounds both latency
// (capped attempts) and duplication (novelty filter); it may return fewer
// than the target count when the model keeps repeating itself.
func (s *generationService) GenerateQuestions(ctx context.Context, req domain.QuizRequest) (*domain.ResultSet, error) {
	fingerprint := req.Fingerprint()
	promptText := prompt.Build(req, s.cfg.BatchSize)

	s.store.Sweep(ctx)
	seen, err := s.store.GetSeen(ctx, fingerprint)
	if err != nil {
		// A broken seen-store degrades deduplication, not generation.
		logger.Get().Error("Failed to load seen-set, proceeding with empty novelty state",
			zap.Error(err), zap.String("fingerprint", fingerprint))
		seen = make(map[string]struct{})
	}

	var accepted []domain.Question
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		raw, genErr := s.generator.Generate(ctx, promptText)
		if genErr != nil {
			if !domain.IsRetryable(genErr) {
				return nil, genErr
			}
			logger.Get().Warn("Generation attempt failed, retrying",
				zap.Int("attempt", attempt), zap.Error(genErr))
		} else {
			parsed := parser.Parse(raw, req.Type)
			logger.Get().Debug("Parsed generation response",
				zap.Int("attempt", attempt),
				zap.Int("parsed", len(parsed)))

			for _, q := range parsed {
				if _, dup := seen[q.Description]; dup {
					continue
				}
				// Mark immediately so later items in this batch can't duplicate
				// it. Novel items past the per-call cap are remembered too:
				// a model that replays the same batch must not get served twice.
				seen[q.Description] = struct{}{}
				if len(accepted) < s.cfg.TargetCount {
					accepted = append(accepted, q)
				}
			}
		}

		if len(accepted) > 0 {
			if commitErr := s.store.Commit(ctx, fingerprint, seen); commitErr != nil {
				logger.Get().Error("Failed to commit seen-set",
					zap.Error(commitErr), zap.String("fingerprint", fingerprint))
			}
			logger.Get().Info("Accepted novel questions",
				zap.Int("attempt", attempt),
				zap.Int("accepted", len(accepted)),
				zap.String("type", string(req.Type)))
			return s.shapeResult(ctx, req, accepted), nil
		}

		logger.Get().Info("No novel questions this attempt",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.MaxAttempts),
			zap.String("fingerprint", fingerprint))

		if attempt < s.cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return nil, domain.NewRequestCancelledError(ctx.Err())
			case <-time.After(s.cfg.RetryBackoff):
			}
		}
	}

	return nil, domain.NewNoveltyExhaustedError()
}

func (s *generationService) shapeResult(ctx context.Context, req domain.QuizRequest, accepted []domain.Question) *domain.ResultSet {
	result := &domain.ResultSet{Original: accepted}
	if req.TranslationLanguage != "" {
		result.Translated = s.translation.TranslateQuestions(ctx, accepted, req.TranslationLanguage)
	}
	return result
}
