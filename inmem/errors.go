package inmem

import "github.com/logiflow/logiflow/kit/platform/errors"

func notFoundError(kind, op string) *errors.Error {
	return &errors.Error{
		Code: errors.ENotFound,
		Msg:  kind + " not found",
		Op:   OpPrefix + op,
	}
}
