package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/glob-dev/users-gateway/internal/logger"
	"github.com/glob-dev/users-gateway/internal/models"
	"github.com/glob-dev/users-gateway/internal/repositories"
)

// Error variables
var (
	ErrIDAlreadyExists = errors.New("id already exists")
	ErrNoSuchID        = errors.New("no such id")

	// ErrDuplicateID marks more than one stored row for one id. The primary
	// key makes this impossible in normal operation, so it is an internal
	// fault, not a domain outcome.
	ErrDuplicateID = errors.New("more than one row for one id")
)

// UserReader defines read-only operations for stored users.
type UserReader interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	GetByID(ctx context.Context, userID int64) ([]models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for stored users.
type UserWriter interface {
	Insert(ctx context.Context, user models.User) error
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, userID int64) error
}

// UserCache caches users fetched by id.
type UserCache interface {
	Get(ctx context.Context, userID int64) (*models.User, error)
	Set(ctx context.Context, user models.User) error
	Del(ctx context.Context, userID int64) error
}

// UserEventWriter defines a Kafka writer abstraction.
type UserEventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService handles the users CRUD operations and event publishing.
// Cache and event writer are optional, a nil value disables the concern.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	eventWriter UserEventWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache, eventWriter UserEventWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		eventWriter: eventWriter,
	}
}

// publishEvent publishes a user lifecycle event to Kafka.
func (svc *UserService) publishEvent(ctx context.Context, operation string, userID int64, userName string) {
	if svc.eventWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation, "user_id", userID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Operation: operation,
		UserID:    userID,
		UserName:  userName,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal user event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("user event published to Kafka", "event_id", event.EventID, "operation", operation, "user_id", userID)
	}
}

// AddUser stores a new user under the given id and returns the stored name.
// The id must not be taken: a present row fails with ErrIDAlreadyExists, and
// so does a primary key violation when a concurrent request wins the race
// between the existence check and the insert.
func (svc *UserService) AddUser(ctx context.Context, userID int64, userName, creationDate string) (string, error) {
	user := models.User{UserID: userID, UserName: userName, CreationDate: creationDate}
	if err := user.Validate(); err != nil {
		logger.Log.Errorw("invalid user payload", "user_id", userID, "error", err)
		return "", err
	}

	exists, err := svc.reader.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "error", err)
		return "", err
	}
	if exists {
		logger.Log.Errorw("user already exists", "user_id", userID)
		return "", ErrIDAlreadyExists
	}

	if err := svc.writer.Insert(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			logger.Log.Errorw("user inserted concurrently", "user_id", userID)
			return "", ErrIDAlreadyExists
		}
		logger.Log.Errorw("failed to insert user", "user_id", userID, "error", err)
		return "", err
	}

	svc.publishEvent(ctx, models.EventUserAdded, userID, userName)

	return userName, nil
}

// GetUser returns the stored user with the given id. A missing row fails with
// ErrNoSuchID, duplicate rows fail with a wrapped ErrDuplicateID.
func (svc *UserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("user cache lookup failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	users, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return models.User{}, err
	}
	if len(users) == 0 {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return models.User{}, ErrNoSuchID
	}
	if len(users) > 1 {
		logger.Log.Errorw("duplicate rows for one id", "user_id", userID, "rows", len(users))
		return models.User{}, fmt.Errorf("user_id %d has %d rows: %w", userID, len(users), ErrDuplicateID)
	}

	user := users[0]
	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("failed to cache user", "user_id", userID, "error", err)
		}
	}

	return user, nil
}

// UpdateUser replaces the mutable columns of an existing user and returns the
// new name. A missing row fails with ErrNoSuchID.
func (svc *UserService) UpdateUser(ctx context.Context, userID int64, userName, creationDate string) (string, error) {
	user := models.User{UserID: userID, UserName: userName, CreationDate: creationDate}
	if err := user.Validate(); err != nil {
		logger.Log.Errorw("invalid user payload", "user_id", userID, "error", err)
		return "", err
	}

	exists, err := svc.reader.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "error", err)
		return "", err
	}
	if !exists {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return "", ErrNoSuchID
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
		return "", err
	}

	svc.dropFromCache(ctx, userID)
	svc.publishEvent(ctx, models.EventUserUpdated, userID, userName)

	return userName, nil
}

// DeleteUser removes an existing user and returns the deleted id. A missing
// row fails with ErrNoSuchID.
func (svc *UserService) DeleteUser(ctx context.Context, userID int64) (int64, error) {
	exists, err := svc.reader.Exists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "error", err)
		return 0, err
	}
	if !exists {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return 0, ErrNoSuchID
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		return 0, err
	}

	svc.dropFromCache(ctx, userID)
	svc.publishEvent(ctx, models.EventUserDeleted, userID, "")

	return userID, nil
}

// ListUsers returns every stored user.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// dropFromCache invalidates the cached entry after a mutation.
func (svc *UserService) dropFromCache(ctx context.Context, userID int64) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Del(ctx, userID); err != nil {
		logger.Log.Errorw("failed to drop user from cache", "user_id", userID, "error", err)
	}
}
