package repository

import (
	"context"
	"errors"
	"time"

	"clinic-appointments-api/internal/domain/entity"
	domainRepo "clinic-appointments-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAllActive(ctx context.Context, offset, limit int) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Offset(offset).
		Limit(limit).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

func (r *doctorRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindActiveBySpecialtyWithFreeSlot picks the first active doctor of the
// specialty who has no active appointment at exactly the requested time.
func (r *doctorRepository) FindActiveBySpecialtyWithFreeSlot(ctx context.Context, specialty entity.Specialty, at time.Time) (*entity.Doctor, error) {
	busy := r.db.Model(&entity.Appointment{}).
		Select("doctor_id").
		Where("scheduled_at = ? AND cancellation_reason IS NULL", at)

	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Where("active = ? AND specialty = ?", true, specialty).
		Where("id NOT IN (?)", busy).
		Order("name").
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
