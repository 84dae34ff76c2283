package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"quizcraft/internal/adapter/seenstore"
	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockGenerator for domain.TextGenerator interface
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Calls        int
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	panic("MockGenerator.GenerateFunc not implemented")
}

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		MaxAttempts:  3,
		TargetCount:  10,
		BatchSize:    25,
		RetryBackoff: time.Millisecond,
		SeenTTL:      5 * time.Minute,
	}
}

func mcqBatch(start, count int) string {
	objects := make([]string, 0, count)
	for i := start; i < start+count; i++ {
		objects = append(objects, fmt.Sprintf(`{
			"question": "Question %d?",
			"option1": "A%d",
			"option2": "B%d",
			"option3": "C%d",
			"option4": "D%d",
			"answer": "C%d"
		}`, i, i, i, i, i, i))
	}
	return "[" + strings.Join(objects, ",") + "]"
}

func mcqRequest() domain.QuizRequest {
	return domain.QuizRequest{
		ClassName:      "Grade 5",
		CourseName:     "Math",
		SectionName:    "Fractions",
		SubSectionName: "Addition",
		Language:       "English",
		Type:           domain.QuestionTypeMCQ,
		Difficulty:     "easy",
	}
}

func newService(gen domain.TextGenerator, store domain.SeenStore) service.GenerationService {
	translation := service.NewTranslationService(prefixTranslator("[t] "))
	return service.NewGenerationService(gen, store, translation, testQuizConfig())
}

func TestGenerateQuestions_CapsAtTargetCount(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return mcqBatch(0, 25), nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	result, err := newService(gen, store).GenerateQuestions(context.Background(), mcqRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, gen.Calls)
	assert.Len(t, result.Original, 10)
	assert.Nil(t, result.Translated)
	for _, q := range result.Original {
		assert.NotEmpty(t, q.Description)
		assert.Len(t, q.Options, 4)
		assert.NotEmpty(t, q.Answer)
	}
}

func TestGenerateQuestions_RepeatedBatchExhaustsNovelty(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return mcqBatch(0, 25), nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)
	svc := newService(gen, store)
	ctx := context.Background()

	first, err := svc.GenerateQuestions(ctx, mcqRequest())
	require.NoError(t, err)
	assert.Len(t, first.Original, 10)

	// The model replays the exact same 25 questions; every attempt yields
	// zero novel items and the request fails after the attempt budget.
	gen.Calls = 0
	_, err = svc.GenerateQuestions(ctx, mcqRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNoveltyExhausted, domainErr.Code)
	assert.Equal(t, testQuizConfig().MaxAttempts, gen.Calls)
}

func TestGenerateQuestions_NoDuplicateTextAcrossCallsWithinTTL(t *testing.T) {
	batch := 0
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		// Overlapping batches: the second call repeats the first 25 and adds
		// 25 fresh ones.
		defer func() { batch++ }()
		return mcqBatch(0, 25+25*batch), nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)
	svc := newService(gen, store)
	ctx := context.Background()

	first, err := svc.GenerateQuestions(ctx, mcqRequest())
	require.NoError(t, err)
	second, err := svc.GenerateQuestions(ctx, mcqRequest())
	require.NoError(t, err)

	served := make(map[string]struct{})
	for _, q := range append(first.Original, second.Original...) {
		_, dup := served[q.Description]
		assert.False(t, dup, "question %q served twice within the TTL", q.Description)
		served[q.Description] = struct{}{}
	}
}

func TestGenerateQuestions_ZeroParseAttemptIsRetried(t *testing.T) {
	calls := 0
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		calls++
		if calls < 3 {
			return "I'm sorry, I cannot help with that.", nil
		}
		return mcqBatch(0, 25), nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	result, err := newService(gen, store).GenerateQuestions(context.Background(), mcqRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, gen.Calls)
	assert.Len(t, result.Original, 10)
}

func TestGenerateQuestions_RetryableUpstreamFailureIsRetryFuel(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return "", domain.NewLLMServiceError(errors.New("connection reset"))
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	_, err := newService(gen, store).GenerateQuestions(context.Background(), mcqRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNoveltyExhausted, domainErr.Code)
	assert.Equal(t, testQuizConfig().MaxAttempts, gen.Calls)
}

func TestGenerateQuestions_FatalUpstreamFailureAbortsImmediately(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return "", domain.NewLLMAuthError(errors.New("API key not valid"))
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	_, err := newService(gen, store).GenerateQuestions(context.Background(), mcqRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMAuthError, domainErr.Code)
	assert.Equal(t, 1, gen.Calls, "auth failures must not burn the attempt budget")
}

func TestGenerateQuestions_CancellationDuringBackoffIsClientInitiated(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		// Nothing parseable, so the loop heads into its backoff wait.
		cancel()
		return "no questions here", nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	// A long backoff proves cancellation interrupts the wait instead of
	// riding it out.
	cfg := testQuizConfig()
	cfg.RetryBackoff = time.Minute
	translation := service.NewTranslationService(prefixTranslator("[t] "))
	svc := service.NewGenerationService(gen, store, translation, cfg)

	_, err := svc.GenerateQuestions(ctx, mcqRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeRequestCancelled, domainErr.Code)
	assert.Equal(t, 1, gen.Calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateQuestions_TranslatedResultsAlignPositionally(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return mcqBatch(0, 25), nil
	}}
	store := seenstore.NewMemoryStore(5 * time.Minute)

	req := mcqRequest()
	req.TranslationLanguage = "Punjabi"

	result, err := newService(gen, store).GenerateQuestions(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Translated)
	require.Len(t, result.Translated, len(result.Original))
	for i := range result.Original {
		assert.Equal(t, "[t] "+result.Original[i].Description, result.Translated[i].Description)
		assert.Equal(t, "[t] "+result.Original[i].Answer, result.Translated[i].Answer)
	}
}

func TestGenerateQuestions_FreshFingerprintAfterTTLStartsClean(t *testing.T) {
	gen := &MockGenerator{GenerateFunc: func(context.Context, string) (string, error) {
		return mcqBatch(0, 25), nil
	}}
	// Zero TTL: every entry is expired by the time the next request reads it.
	store := seenstore.NewMemoryStore(0)
	svc := newService(gen, store)
	ctx := context.Background()

	first, err := svc.GenerateQuestions(ctx, mcqRequest())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	second, err := svc.GenerateQuestions(ctx, mcqRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Original, second.Original,
		"after the TTL the same questions may legally be served again")
}
