package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/dayne-app/dayne/internal/extract"
	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/response"
)

// classify maps a pipeline error to its HTTP status and error code.
func classify(err error) (int, response.ErrCode) {
	var upstream *questiongen.UpstreamError
	switch {
	case errors.Is(err, pipeline.ErrEmptyText):
		return http.StatusBadRequest, response.ErrEmptyText
	case errors.Is(err, questiongen.ErrInvalidCount):
		return http.StatusBadRequest, response.ErrValidation
	case errors.Is(err, pipeline.ErrTooLittleText):
		return http.StatusUnprocessableEntity, response.ErrTooLittle
	case errors.Is(err, questiongen.ErrTextTooShort):
		return http.StatusUnprocessableEntity, response.ErrTextTooShort
	case errors.Is(err, extract.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, response.ErrFileTooLarge
	case errors.Is(err, extract.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, response.ErrUnsupportedFile
	case errors.Is(err, extract.ErrPDFUnsupported):
		return http.StatusUnprocessableEntity, response.ErrPDFUnsupported
	case errors.Is(err, extract.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, response.ErrExtraction
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable, response.ErrNotConfigured
	case errors.Is(err, questiongen.ErrUnparseable):
		return http.StatusBadGateway, response.ErrUnparseable
	case errors.Is(err, questiongen.ErrNoQuestions):
		return http.StatusBadGateway, response.ErrNoQuestions
	case errors.As(err, &upstream):
		return http.StatusBadGateway, response.ErrUpstream
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, response.ErrUpstream
	}
	return http.StatusInternalServerError, response.ErrInternal
}
