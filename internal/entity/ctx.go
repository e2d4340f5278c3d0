package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP    struct{}
	CtxKeyUser  struct{}
	CtxKeyToken struct{}
)

func UserFromContext(ctx context.Context) (UserJwtInfo, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(UserJwtInfo)
	if !ok {
		return UserJwtInfo{}, errors.New("data type casting")
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user UserJwtInfo) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

func TokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok {
		return "", errors.New("data type casting")
	}

	return token, nil
}
