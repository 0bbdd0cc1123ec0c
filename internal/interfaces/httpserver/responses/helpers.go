package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"twilio-demo/server/internal/utils/platformerrors"
)

// HandleError handles errors and writes appropriate HTTP responses.
// PlatformError types are mapped to their HTTP status codes; anything else is
// treated as an internal error.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()

	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		platformerrors.WriteHTTPError(c, platformErr, logger)
		return
	}

	logger.Error().Err(err).Msg(message)
	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like validation failures.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	status := platformerrors.ErrorTypeToHTTPStatus(errorType)
	c.JSON(status, platformerrors.HTTPErrorResponse{
		Error: &platformerrors.HTTPErrorDetail{
			Message: message,
			Type:    platformerrors.ErrorTypeToString(errorType),
		},
	})
}
