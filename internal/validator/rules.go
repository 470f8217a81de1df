package validator

import (
	"log"
	"regexp"

	"realty_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// phonePattern - мобильный номер вида 09XXXXXXXXX
var phonePattern = regexp.MustCompile(`^09[0-3][0-9]{8}$`)

// registerCustomRules регистрирует кастомные правила валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Приложение не должно стартовать без правил
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-property-type", validatePropertyType)
	mustRegister("is-phone", validatePhone)
	mustRegister("is-bcrypt-len", validateBcryptLen)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}
	return models.UserRole(value).IsValid()
}

func validatePropertyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PropertyType(value).IsValid()
}

// bcryptMaxBytes - bcrypt не принимает пароли длиннее 72 байт (не символов)
const bcryptMaxBytes = 72

func validateBcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= bcryptMaxBytes
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
