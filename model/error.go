// Package model は、NEOと接近記録のデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies model errors.
type ErrorKind int

const (
	// KindType は値の型が期待と異なる場合のエラーです。
	KindType ErrorKind = iota + 1
	// KindFormat は文字列表現を解釈できない場合のエラーです。
	KindFormat
	// KindNotFound は検索対象が存在しない場合のエラーです。
	KindNotFound
	// KindLink は接近記録の紐付けが不正な場合のエラーです。
	KindLink
)

func (k ErrorKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFormat:
		return "format"
	case KindNotFound:
		return "not found"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// センチネルエラー - 検索対象が見つからない場合
var (
	ErrNEONotFound = &Error{Kind: KindNotFound, Field: "neo", Message: "near-earth object not found"}
)

// Error はモデルの構築・検索に関するエラーを表す型
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is reports whether target is a model error of the same kind. A target with
// an empty Field matches any field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Field == "" || e.Field == t.Field)
}

// NewTypeError はKindTypeのErrorを生成するヘルパー関数
func NewTypeError(field, format string, args ...any) error {
	return &Error{Kind: KindType, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewFormatError はKindFormatのErrorを生成するヘルパー関数
func NewFormatError(field, format string, args ...any) error {
	return &Error{Kind: KindFormat, Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err wraps a model error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var me *Error
	if !errors.As(err, &me) {
		return false
	}
	return me.Kind == kind
}
