package todo

import "errors"

// Todo domain errors
var (
	ErrTodoNotFound      = errors.New("todo item not found")
	ErrInvalidTransition = errors.New("todo status can only move forward")
)
