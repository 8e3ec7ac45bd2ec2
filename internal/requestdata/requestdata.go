package requestdata

import (
	"context"
)

type ctxKey struct{}

type RequestData struct {
	UserID    string
	SessionID string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(ctxKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}
