package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/pkg/apperr"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags and
// converts the first failure into a VALIDATION_ERROR.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := errors.As(err, &verrs); ok && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		return apperr.NewValidation(fmt.Sprintf("%s is required", field))
	}
	return apperr.NewValidation(err.Error())
}
