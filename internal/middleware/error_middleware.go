package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// statusForKind maps catalog failure kinds to HTTP status codes
var statusForKind = map[apperrors.Kind]int{
	apperrors.KindNotFound:        http.StatusNotFound,
	apperrors.KindAlreadyExists:   http.StatusConflict,
	apperrors.KindAlreadyEnrolled: http.StatusConflict,
	apperrors.KindNotEnrolled:     http.StatusNotFound,
	apperrors.KindConflict:        http.StatusConflict,
	apperrors.KindValidation:      http.StatusBadRequest,
}

// HandleAPIError writes the error response matching err.
// Catalog errors keep their message text; unknown errors become a 500.
func HandleAPIError(c *gin.Context, err error) {
	var ce *apperrors.CatalogError
	if errors.As(err, &ce) {
		status, ok := statusForKind[ce.Kind]
		if ok {
			detail := dto.NewErrorDetail(dto.ErrorCode(apperrors.CodeOf(err)), ce.Message)
			if len(ce.Details) > 0 {
				detail = detail.WithDetails(ce.Details)
			}
			if ce.Kind == apperrors.KindNotFound || ce.Kind == apperrors.KindNotEnrolled {
				detail = detail.WithSeverity(dto.ErrorSeverityWarning)
			}
			c.JSON(status, dto.NewErrorResponse(detail))
			return
		}
	}

	lgr := logger.WithField("requestID", RequestIDFrom(c))
	lgr.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical),
	))
}
