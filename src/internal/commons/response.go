package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// FailedResponse uses the error text as the message, which is what the console prints.
func FailedResponse[T any](err error) Response[T] {
	return ErrorResponse[T](err.Error())
}
