package validators

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	cpfPattern   = regexp.MustCompile(`^[0-9]{11}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)
)

// IsCPF reports whether s is exactly 11 digits.
func IsCPF(s string) bool {
	return cpfPattern.MatchString(s)
}

// IsPhone reports whether s is a 10 or 11 digit string.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Register adds the "cpf" and "phone" tags to gin's binding engine so the
// request structs can validate them declaratively.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return IsCPF(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
}
