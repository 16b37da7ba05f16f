package inbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)

// NotificationRepository is the notification storage interface
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ListResponse notifications of one user with the unread counter
type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// NotificationResponse one inbox entry
type NotificationResponse struct {
	ID            int64  `json:"id"`
	AppointmentID *int64 `json:"appointmentId,omitempty"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	IsRead        bool   `json:"isRead"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// Service reads and maintains the per-user notification inbox
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService creates a new inbox service instance
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List returns the notifications of one user, newest first
func (s *Service) List(ctx context.Context, userID int64) (*ListResponse, error) {
	s.logger.Info("List: fetching notifications for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	list, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &ListResponse{
		Notifications: make([]NotificationResponse, 0, len(list)),
		UnreadCount:   unread,
	}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:            n.ID,
			AppointmentID: n.AppointmentID,
			Title:         n.Title,
			Message:       n.Message,
			IsRead:        n.IsRead,
			CreatedAt:     n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	s.logger.Info("List: fetched %d notifications for user=%d, unread=%d", len(list), userID, unread)
	return resp, nil
}

// MarkAllRead marks every notification of the user as read
func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	s.logger.Info("MarkAllRead: marking notifications read for user=%d", userID)

	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
