// Package context carries the request authorization across handler
// boundaries.
package context

import (
	"context"

	"github.com/logiflow/logiflow"
	"github.com/logiflow/logiflow/kit/platform/errors"
)

type contextKey string

const authorizerCtxKey = contextKey("logiflow/authorizer/v1")

// SetAuthorizer sets an authorization on context.
func SetAuthorizer(ctx context.Context, a *logiflow.Authorization) context.Context {
	return context.WithValue(ctx, authorizerCtxKey, a)
}

// GetAuthorizer retrieves the authorization from context.
func GetAuthorizer(ctx context.Context) (*logiflow.Authorization, error) {
	a, ok := ctx.Value(authorizerCtxKey).(*logiflow.Authorization)
	if !ok {
		return nil, &errors.Error{
			Msg:  "authorizer not found on context",
			Code: errors.EInternal,
		}
	}

	return a, nil
}
