package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrCollectionNotFound = errors.New("collection not found")
)
