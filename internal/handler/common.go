package handler // handler defines http handlers

import (
	"errors"   // errors provides the sentinel used in getUserID
	"net/http" // HTTP status codes
	"strconv"  // strconv converts path parameters

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-hotel-booking/internal/apperr"
)

// RequestValidator adapts validator.Validate to echo.Validator so handlers
// can call c.Validate on bound request bodies.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}

// getUserID extracts the user_id placed in the context by the JWT middleware.
func getUserID(c echo.Context) (int, error) {
	switch t := c.Get("user_id").(type) {
	case int:
		if t > 0 {
			return t, nil
		}
	case string:
		if n, err := strconv.Atoi(t); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter.  Anything that is not an integer
// becomes 0, which the services reject as NotFound.
func pathID(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0
	}
	return n
}

// respondError writes err using its application kind.  Internal failures
// are logged and answered with a generic message.
func respondError(c echo.Context, log logrus.FieldLogger, err error) error {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
		}).Error("request failed")
		return c.JSON(status, echo.Map{"error": "internal server error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
