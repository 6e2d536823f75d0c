package strict

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ib-77/rusty/pkg/rusty"
)

// TypeSet is a declared set of permitted payload types for one arm of a
// container. A wildcard set admits every payload.
type TypeSet struct {
	types    []reflect.Type
	wildcard bool
}

// Types declares an explicit set of permitted payload types.
func Types(types ...reflect.Type) TypeSet {
	return TypeSet{types: types}
}

// Any declares a wildcard set.
func Any() TypeSet {
	return TypeSet{wildcard: true}
}

// Of returns the reflect.Type of T, interface types included.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (s TypeSet) isEmpty() bool {
	return !s.wildcard && len(s.types) == 0
}

// admits reports whether a payload of dynamic type t is a member of the
// set. A nil t (untyped nil payload) is admitted only by the wildcard.
func (s TypeSet) admits(t reflect.Type) bool {
	if s.wildcard {
		return true
	}
	if t == nil {
		return false
	}
	for _, d := range s.types {
		if t == d {
			return true
		}
		if d.Kind() == reflect.Interface && t.Implements(d) {
			return true
		}
	}
	return false
}

func (s TypeSet) String() string {
	if s.wildcard {
		return "[any]"
	}
	names := make([]string, 0, len(s.types))
	for _, t := range s.types {
		names = append(names, t.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}

// ContractError reports a strict declaration or payload type violation.
// It is a programming error: raised as a panic value and never recovered
// by this module.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string {
	return e.msg
}

func (e *ContractError) Unwrap() error {
	return rusty.ErrContract
}

func contractErrf(format string, args ...any) *ContractError {
	return &ContractError{msg: fmt.Sprintf(format, args...)}
}

// checkDeclared validates a TypeSet against the static payload type P at
// decoration time: the set must be non-empty and every declared type must
// be assignable to P.
func checkDeclared[P any](arm string, s TypeSet) {
	if s.wildcard {
		return
	}
	if len(s.types) == 0 {
		panic(contractErrf("strict: %s arm declares no permitted payload types", arm))
	}
	static := Of[P]()
	for _, d := range s.types {
		if d == nil {
			panic(contractErrf("strict: %s arm declares a nil type", arm))
		}
		if !d.AssignableTo(static) {
			panic(contractErrf("strict: %s arm declares %s, which is not assignable to payload type %s",
				arm, d, static))
		}
	}
}

// typeOf returns the dynamic type of a payload, nil for an untyped nil.
func typeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}
