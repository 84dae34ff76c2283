package handler

import (
	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/service"
	"quizcraft/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles question-generation HTTP requests
type QuizHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.GenerationService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuestions godoc
// @Summary Generate quiz questions
// @Description Generates novel quiz questions for a topic, deduplicated against recently served ones, optionally translated into a second language
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Quiz parameters"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generateQuestions [post]
func (h *QuizHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs // Formatted by the ErrorHandler middleware
	}

	questionType, _ := domain.ParseQuestionType(req.Type)
	result, err := h.service.GenerateQuestions(c.Context(), domain.QuizRequest{
		ClassName:           req.ClassName,
		CourseName:          req.CourseName,
		SectionName:         req.SectionName,
		SubSectionName:      req.SubSectionName,
		Language:            req.LanguageName,
		TranslationLanguage: req.LanguageName1,
		Type:                questionType,
		Difficulty:          req.DifficultyName,
	})
	if err != nil {
		return err
	}

	resp := dto.GenerateQuestionsResponse{
		Result:  dto.FromDomainQuestions(result.Original),
		Message: "all questions",
		Success: true,
	}
	if result.Translated != nil {
		resp.Result1 = dto.FromDomainQuestions(result.Translated)
	}
	return c.JSON(resp)
}
