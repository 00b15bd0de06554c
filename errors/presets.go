package errors

import "google.golang.org/grpc/codes"

// Фабричные функции (неизменяемые пресеты).
func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}
func NotFound() ErrorResponse {
	return New("Resource not found", codes.NotFound, nil).WithReason("not_found")
}
func AlreadyExists() ErrorResponse {
	return New("Resource already exists", codes.AlreadyExists, nil).WithReason("already_exists")
}
func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

// Быстрые конструкторы частых кейсов
func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}

func NotFoundWith(resourceKey, value string) ErrorResponse {
	return NotFound().WithDetail(resourceKey, value)
}

// Conflict(field,value) -> AlreadyExists.
func Conflict(field, value string) ErrorResponse {
	return AlreadyExists().WithReason("conflict").WithDetail(field, value)
}
