package list_notifications

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/inbox"
)

type InboxService interface {
	List(ctx context.Context, userID int64) (*inbox.ListResponse, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
