package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound        = fmt.Errorf("запись не найдена")
	ErrBadRequest      = fmt.Errorf("неверный запрос")
	ErrUserNotFound    = fmt.Errorf("пользователь не найден")
	ErrAlreadyApproved = fmt.Errorf("учётная запись уже подтверждена")
	ErrNotApproved     = fmt.Errorf("учётная запись ещё не подтверждена")
)

// HttpError несёт HTTP-код и сообщение для клиента плюс внутреннюю ошибку
// и произвольный контекст для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message}
}

// Сопоставление сентинельных ошибок с HTTP-кодами для ErrorResponse.
var StatusByError = map[error]int{
	ErrNotFound:           http.StatusNotFound,
	ErrUserNotFound:       http.StatusNotFound,
	ErrBadRequest:         http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrEmptyAuthHeader:    http.StatusUnauthorized,
	ErrInvalidAuthHeader:  http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrTokenIsNotAccess:   http.StatusUnauthorized,
	ErrTokenIsNotRefresh:  http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrNotApproved:        http.StatusForbidden,
	ErrAlreadyApproved:    http.StatusConflict,
}
