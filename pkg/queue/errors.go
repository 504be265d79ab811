package queue

import "errors"

var (
	ErrRepositoryNil   = errors.New("repository cannot be nil")
	ErrJobNil          = errors.New("job cannot be nil")
	ErrTaskNil         = errors.New("task cannot be nil")
	ErrInvalidPriority = errors.New("priority must be between 0 and 999999")
	ErrDuplicateTask   = errors.New("task already exists")
	ErrTaskNotFound    = errors.New("task not found")

	ErrFailedToParseRedisURL = errors.New("failed to parse redis connection url")
	ErrRedisNotReady         = errors.New("redis did not become ready")
)
