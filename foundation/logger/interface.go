package logger

import "context"

type LoggerInterface interface {
	Debugw(string, ...any)
	Infow(string, ...any)
	Warnw(string, ...any)
	Errorw(string, ...any)

	DebugwCtx(context.Context, string, ...any)
	InfowCtx(context.Context, string, ...any)
	WarnwCtx(context.Context, string, ...any)

	With(...any) LoggerInterface
	SafeSync()
}
