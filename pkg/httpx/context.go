package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id. The access gate sets it
// and the per-user rate limiter reads it.
const CtxKeyUserID ctxKey = "user_id"

func userIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
