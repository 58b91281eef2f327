package apperr

import "errors"

// Kind - класс ошибки, определяет реакцию транспорта.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindState         Kind = "state"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindRateLimit     Kind = "rate_limit"
	KindInternal      Kind = "internal"
)

// Error - доменная ошибка с машинным кодом и текстом для клиента.
type Error struct {
	Code    string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func newError(code string, kind Kind, message string) *Error {
	return &Error{Code: code, Kind: kind, Message: message}
}

// Ошибки валидации.
var (
	ErrMissingShippingFields = newError("MissingShippingFields", KindValidation, "не заполнены обязательные поля доставки")
	ErrInvalidPincode        = newError("InvalidPincode", KindValidation, "почтовый индекс должен состоять из 6 цифр")
	ErrZeroOrNegativeQuote   = newError("ZeroOrNegativeQuote", KindValidation, "итоговая сумма должна быть больше нуля")
	ErrInvalidAdvance        = newError("InvalidAdvance", KindValidation, "аванс должен быть в пределах от 0 до итоговой суммы")
	ErrInvalidRequest        = newError("InvalidRequest", KindValidation, "некорректный запрос")
	ErrUnsupportedMedia      = newError("UnsupportedMedia", KindValidation, "допустимы только изображения JPEG, PNG или WebP")
)

// Ошибки состояния: представление клиента о сущности устарело.
var (
	ErrStockUnavailable  = newError("StockUnavailable", KindState, "недостаточно товара на складе")
	ErrDropExpired       = newError("DropExpired", KindState, "окно лимитированной продажи закрыто")
	ErrInvalidTransition = newError("InvalidTransition", KindState, "действие недоступно в текущем состоянии")
	ErrAlreadyDecided    = newError("AlreadyDecided", KindState, "решение по оплате уже принято")
	ErrNoProofSubmitted  = newError("NoProofSubmitted", KindState, "подтверждение оплаты не загружено")
	ErrNotFound          = newError("NotFound", KindNotFound, "запись не найдена")
)

var (
	ErrForbidden       = newError("Forbidden", KindAuthorization, "действие доступно только администратору")
	ErrTooManyRequests = newError("TooManyRequests", KindRateLimit, "слишком много запросов, повторите позже")
)

// As извлекает доменную ошибку из цепочки.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf возвращает класс ошибки; для не доменных ошибок - KindInternal.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// CodeOf возвращает машинный код ошибки или "Internal".
func CodeOf(err error) string {
	if e, ok := As(err); ok {
		return e.Code
	}
	return "Internal"
}
