package middleware

import (
	"errors"
	"net/http"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const statusClientClosedRequest = 499

// ErrorHandler is the centralized Fiber error handler. Handlers and
// middleware return errors; this maps them onto the response contract.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false,
				Message: "missing or invalid request fields",
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			if domainErr.Code == domain.CodeRequestCancelled {
				log.Warn("Request cancelled by client",
					zap.String("path", c.Path()),
					zap.Error(domainErr.Cause),
				)
				return c.Status(statusCode).JSON(dto.ErrorResponse{
					Success: false,
					Message: domainErr.Message,
				})
			}
			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			)
			return c.Status(statusCode).JSON(dto.ErrorResponse{
				Success: false,
				Message: domainErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false,
			Message: "internal server error",
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeRequestCancelled:
		// 499, the nginx convention for a client-closed request.
		return statusClientClosedRequest
	case domain.CodeLLMAuthError:
		return http.StatusBadGateway
	case domain.CodeLLMServiceError:
		return http.StatusServiceUnavailable
	case domain.CodeNoveltyExhausted:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
