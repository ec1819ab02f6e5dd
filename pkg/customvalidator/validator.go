package customvalidator

import (
	"regexp"

	"pedidos-system/pkg/constants"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("approval_role", isApprovableRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_urgency", isKnownUrgency); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_status", isKnownStatus); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// Подтвердить учётную запись можно только одной из двух терминальных ролей.
func isApprovableRole(fl validator.FieldLevel) bool {
	return constants.IsKnownRole(fl.Field().String())
}

func isKnownStatus(fl validator.FieldLevel) bool {
	return constants.IsKnownStatus(fl.Field().String())
}

func isKnownUrgency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.UrgencyLow, constants.UrgencyNormal, constants.UrgencyHigh:
		return true
	}
	return false
}
