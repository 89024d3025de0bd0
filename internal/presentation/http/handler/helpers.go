package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sangkips/insights-api/internal/domain/insight"
	"github.com/sangkips/insights-api/pkg/apperror"
)

// partyTypeParam resolves the :party_type path segment
func partyTypeParam(c *gin.Context) (insight.PartyType, error) {
	raw := c.Param("party_type")
	pt, err := insight.LookupPartyType(raw)
	if err != nil {
		return insight.PartyType{}, apperror.NewUnsupportedPartyTypeError(raw, err)
	}
	return pt, nil
}

// bindingFieldErrors converts binding tag failures into per-field errors.
// It reports false for errors that are not validation failures, such as malformed JSON.
func bindingFieldErrors(err error) ([]apperror.FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "is required"
		if fe.Tag() != "required" {
			msg = "failed " + fe.Tag() + " validation"
		}
		fields = append(fields, apperror.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: msg,
		})
	}
	return fields, true
}
