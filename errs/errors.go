package errs

import (
	"errors"
	"fmt"
)

type ErrType string

const (
	COMPILE_ERROR  ErrType = "COMPILE ERROR"
	RUNTIME_ERROR  ErrType = "RUNTIME ERROR"
	INTERNAL_ERROR ErrType = "INTERNAL ERROR"
	UNKNOWN_ERROR  ErrType = "UNKNOWN ERROR"
)

// 外部バックエンドの診断によるコンパイルエラー
type CompileError struct {
	message string
	wrapped error
}

func NewCompileError(message string) *CompileError {
	return &CompileError{
		message: message,
	}
}

func (e *CompileError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *CompileError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// 実行したユーザプログラムの異常終了
type RuntimeError struct {
	message string
	wrapped error
}

func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{
		message: message,
	}
}

func (e *RuntimeError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *RuntimeError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// 内部的なエラー
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// エラーを処理する関数
func HandleError(err error) {
	var compileErr *CompileError
	var runtimeErr *RuntimeError
	var internalErr *InternalError
	var errType ErrType
	switch {
	case errors.As(err, &compileErr):
		errType = COMPILE_ERROR
	case errors.As(err, &runtimeErr):
		errType = RUNTIME_ERROR
	case errors.As(err, &internalErr):
		errType = INTERNAL_ERROR
	default:
		errType = UNKNOWN_ERROR
	}
	fmt.Printf("\n\033[31m[%s]\n %s\033[0m\n\n", errType, err.Error())
}
