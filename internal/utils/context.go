package utils

import (
	"context"
)

type contextKey string

const ContextRequestIDKey contextKey = "requestID"

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID := ctx.Value(ContextRequestIDKey)
	requestIDStr, ok := requestID.(string)
	return requestIDStr, ok
}
