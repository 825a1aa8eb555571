// file: internals/features/schedule/commitments/service/commitment_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gymku_backend/internals/features/schedule/commitments/model"
	pmodel "gymku_backend/internals/features/membership/plans/model"
)

/* =========================
   Store contracts
   ========================= */

type CommitmentStore interface {
	// Insert-only; baris tidak pernah diubah setelah tertulis.
	Append(ctx context.Context, rec *model.ClassCommitmentModel) error
	ByStudent(ctx context.Context, studentID uuid.UUID) ([]model.ClassCommitmentModel, error)
	// Terurut desc menurut effective_from, hanya effective_from <= until.
	ByStudentSeriesUntil(ctx context.Context, studentID, seriesID uuid.UUID, until time.Time) ([]model.ClassCommitmentModel, error)
	BySeries(ctx context.Context, seriesID uuid.UUID) ([]model.ClassCommitmentModel, error)
}

// Atomic menjalankan fn dalam satu transaction; validasi kuota + append
// harus satu scope supaya hasil baca tidak basi.
type Atomic interface {
	InTx(ctx context.Context, fn func(store CommitmentStore) error) error
}

// SeriesDirectory = fetch metadata eksplisit series id → weekday.
type SeriesDirectory interface {
	WeekdayByID(ctx context.Context, seriesID uuid.UUID) (int, error)
}

type PlanDirectory interface {
	// Termasuk plan yang sudah soft-delete: kuota tetap berlaku
	// memakai max_days yang tersimpan.
	PlanByID(ctx context.Context, planID uuid.UUID) (*pmodel.MembershipPlanModel, error)
	// nil, nil kalau tidak ada assignment aktif pada `at`.
	ActiveAssignment(ctx context.Context, studentID uuid.UUID, at time.Time) (*pmodel.MembershipPlanAssignmentModel, error)
}

/* =========================
   Service
   ========================= */

type CommitmentService struct {
	Commitments CommitmentStore
	Tx          Atomic
	Series      SeriesDirectory
	Plans       PlanDirectory
	Now         func() time.Time
}

func (s *CommitmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* =========================
   Resolver (point-in-time)
   ========================= */

// CurrentStatus = status yang berlaku untuk (student, series) pada `at`:
// baris dengan effective_from terbesar yang <= at; default NOT_ATTENDING.
func (s *CommitmentService) CurrentStatus(ctx context.Context, studentID, seriesID uuid.UUID, at time.Time) (string, error) {
	rows, err := s.Commitments.ByStudentSeriesUntil(ctx, studentID, seriesID, at)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return model.CommitmentStatusNotAttending, nil
	}
	return rows[0].ClassCommitmentStatus, nil
}

// History = semua baris (student, series) dengan effective_from <= now,
// paling baru duluan.
func (s *CommitmentService) History(ctx context.Context, studentID, seriesID uuid.UUID) ([]model.ClassCommitmentModel, error) {
	return s.Commitments.ByStudentSeriesUntil(ctx, studentID, seriesID, s.now())
}

// CurrentlyAttending = series yang status terakhirnya ATTENDING pada `at`.
// Baris dengan effective_from > at dibuang total, bukan sekadar kalah.
func (s *CommitmentService) CurrentlyAttending(ctx context.Context, studentID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	rows, err := s.Commitments.ByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return attendingKeys(rows, at, func(r model.ClassCommitmentModel) uuid.UUID {
		return r.ClassCommitmentSeriesID
	}), nil
}

// AttendingStudents = kebalikan CurrentlyAttending, per series; dipakai
// generator untuk roster occurrence virtual.
func (s *CommitmentService) AttendingStudents(ctx context.Context, seriesID uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	rows, err := s.Commitments.BySeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return attendingKeys(rows, at, func(r model.ClassCommitmentModel) uuid.UUID {
		return r.ClassCommitmentStudentID
	}), nil
}

// attendingKeys: filter effective_from <= at, group per key, simpan baris
// dengan effective_from terbesar, keep kalau statusnya ATTENDING.
func attendingKeys(rows []model.ClassCommitmentModel, at time.Time, keyOf func(model.ClassCommitmentModel) uuid.UUID) []uuid.UUID {
	latest := map[uuid.UUID]model.ClassCommitmentModel{}
	for _, r := range rows {
		if r.ClassCommitmentEffectiveFrom.After(at) {
			continue
		}
		k := keyOf(r)
		cur, ok := latest[k]
		if !ok || !r.ClassCommitmentEffectiveFrom.Before(cur.ClassCommitmentEffectiveFrom) {
			latest[k] = r
		}
	}

	out := make([]uuid.UUID, 0, len(latest))
	for k, r := range latest {
		if r.ClassCommitmentStatus == model.CommitmentStatusAttending {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
