package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var clinicEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsClinicEmail accepts local@domain.tld addresses with an ASCII local part
// and a letters-only TLD of at least two characters.
func IsClinicEmail(fl validator.FieldLevel) bool {
	return clinicEmailRegex.MatchString(fl.Field().String())
}

// Register installs the custom tags on validate.
func Register(validate *validator.Validate) error {
	return validate.RegisterValidation("clinicemail", IsClinicEmail)
}
