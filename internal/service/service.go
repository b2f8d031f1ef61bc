// Package service holds the intake and moderation pipeline. Stores and the
// notification enqueuer sit behind interfaces so tests can run against the
// in-memory doubles.
package service

import (
	"context"
	"io"

	"impilo/registry/internal/models"
)

type RegistrationStore interface {
	Create(ctx context.Context, reg models.Registration) error
	GetByID(ctx context.Context, id string) (models.Registration, error)
	List(ctx context.Context, limit, offset int) ([]models.Registration, error)
	UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) (models.Registration, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	CountByStatus(ctx context.Context, status models.RegistrationStatus) (int, error)
}

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	Create(ctx context.Context, admin models.Admin) error
}

// ObjectPutter is the upload-receiving side of the object store. It returns
// the raw storage URL of the stored object.
type ObjectPutter interface {
	Put(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error)
}

// TransitionEnqueuer hands a committed status change to the notification
// pipeline. Implementations must not block on delivery.
type TransitionEnqueuer interface {
	EnqueueTransition(ctx context.Context, reg models.Registration) error
}
