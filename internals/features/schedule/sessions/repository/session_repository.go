// file: internals/features/schedule/sessions/repository/session_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/schedule/sessions/model"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) ActiveInRange(ctx context.Context, from, to time.Time) ([]model.ClassSessionModel, error) {
	var rows []model.ClassSessionModel
	err := r.DB.WithContext(ctx).
		Where("class_session_start_at >= ? AND class_session_start_at < ?", from, to).
		Find(&rows).Error
	return rows, err
}

func (r *SessionRepository) ActiveByCanonicalID(ctx context.Context, canonicalID string) (*model.ClassSessionModel, error) {
	var row model.ClassSessionModel
	err := r.DB.WithContext(ctx).
		Where("class_session_canonical_id = ?", canonicalID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *model.ClassSessionModel) error {
	return r.DB.WithContext(ctx).Save(session).Error
}

/* =========================
   Participants
   ========================= */

func (r *SessionRepository) ActiveBySession(ctx context.Context, sessionID uuid.UUID) ([]model.ClassSessionParticipantModel, error) {
	var rows []model.ClassSessionParticipantModel
	err := r.DB.WithContext(ctx).
		Where("class_session_participant_session_id = ?", sessionID).
		Find(&rows).Error
	return rows, err
}

func (r *SessionRepository) SoftDeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("class_session_participant_session_id = ?", sessionID).
		Delete(&model.ClassSessionParticipantModel{}).Error
}

func (r *SessionRepository) Create(ctx context.Context, p *model.ClassSessionParticipantModel) error {
	return r.DB.WithContext(ctx).Create(p).Error
}
