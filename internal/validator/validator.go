package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"atelier/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance возвращает синглтон-экземпляр валидатора.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct выполняет валидацию по тегам структуры.
func ValidateStruct(s interface{}) error {
	return getInstance().Struct(s)
}

// Check валидирует структуру и переводит ошибки в ErrInvalidRequest
// с перечислением полей.
func Check(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, apperr.ErrInvalidRequest)
	}
	return fmt.Errorf("поля %s: %w", strings.Join(fieldNames(verrs), ", "), apperr.ErrInvalidRequest)
}

// CheckShipping валидирует адрес доставки: неверный индекс - ErrInvalidPincode,
// любое другое пустое обязательное поле - ErrMissingShippingFields.
func CheckShipping(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, apperr.ErrMissingShippingFields)
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Field() == "Pincode" && fe.Tag() != "required" {
			return fmt.Errorf("индекс %q: %w", fe.Value(), apperr.ErrInvalidPincode)
		}
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("поля %s: %w", strings.Join(missing, ", "), apperr.ErrMissingShippingFields)
}

func fieldNames(verrs validator.ValidationErrors) []string {
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Namespace())
	}
	return names
}
