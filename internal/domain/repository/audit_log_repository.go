package repository

import (
	"context"

	"clinic-appointments-api/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, offset, limit int) ([]entity.AuditLog, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
