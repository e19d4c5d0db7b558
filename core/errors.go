package core

import (
	"errors"
	"fmt"
)

var (
	ErrNilArgument = errors.New("argument cannot be nil")
	ErrOutOfRange  = errors.New("argument out of range")
)

// ArgumentError 指明出错的参数
type ArgumentError struct {
	Name  string
	Value any
	Err   error
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrNilArgument) {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s = %v: %v", e.Name, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// NilArgument 空参数错误
func NilArgument(name string) error {
	return &ArgumentError{Name: name, Err: ErrNilArgument}
}

// OutOfRange 越界错误，reason 说明约束
func OutOfRange(name string, value any, reason string) error {
	return &ArgumentError{Name: name, Value: value, Err: fmt.Errorf("%w: %s", ErrOutOfRange, reason)}
}
