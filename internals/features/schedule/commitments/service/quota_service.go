// file: internals/features/schedule/commitments/service/quota_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/schedule/commitments/model"
	pmodel "gymku_backend/internals/features/membership/plans/model"
)

// Kuota mingguan = max_days plan yang sedang aktif, dihitung sebagai
// jumlah HARI BERBEDA yang punya commitment ATTENDING. Dua series di hari
// yang sama cuma kehitung satu.

/* =========================
   Single update
   ========================= */

// UpdateSingle append satu commitment baru. Status non-ATTENDING selalu
// lolos tanpa cek kuota; ATTENDING divalidasi dulu terhadap plan aktif.
// Validasi + append jalan dalam satu transaction.
func (s *CommitmentService) UpdateSingle(ctx context.Context, studentID, seriesID uuid.UUID, status string, effectiveFrom *time.Time) (*model.ClassCommitmentModel, error) {
	if !model.IsValidCommitmentStatus(status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status commitment tidak valid")
	}

	now := s.now()
	eff := now
	if effectiveFrom != nil {
		eff = *effectiveFrom
	}
	rec := &model.ClassCommitmentModel{
		ClassCommitmentStudentID:     studentID,
		ClassCommitmentSeriesID:      seriesID,
		ClassCommitmentStatus:        status,
		ClassCommitmentEffectiveFrom: eff,
	}

	if status != model.CommitmentStatusAttending {
		if err := s.Commitments.Append(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	plan, err := s.activePlan(ctx, studentID, now)
	if err != nil {
		return nil, err
	}
	targetWeekday, err := s.Series.WeekdayByID(ctx, seriesID)
	if err != nil {
		return nil, err
	}

	err = s.Tx.InTx(ctx, func(store CommitmentStore) error {
		days, err := s.attendingWeekdays(ctx, store, studentID, now, map[uuid.UUID]struct{}{seriesID: {}})
		if err != nil {
			return err
		}
		days[targetWeekday] = struct{}{}
		if len(days) > plan.MembershipPlanMaxDays {
			return fiber.NewError(fiber.StatusConflict, "Kuota hari latihan per minggu terlampaui")
		}
		return store.Append(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

/* =========================
   Bulk update
   ========================= */

// UpdateBulk append satu commitment per series, all-or-nothing.
// Untuk ATTENDING, union weekday dari series lama (di luar batch) dan
// semua series yang diminta harus tetap <= max_days; kalau lewat, tidak
// ada satu baris pun yang tertulis.
func (s *CommitmentService) UpdateBulk(ctx context.Context, studentID uuid.UUID, seriesIDs []uuid.UUID, status string, effectiveFrom *time.Time) ([]model.ClassCommitmentModel, error) {
	if !model.IsValidCommitmentStatus(status) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status commitment tidak valid")
	}
	requested := dedupeUUIDs(seriesIDs)
	if len(requested) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Daftar series kosong")
	}

	now := s.now()
	eff := now
	if effectiveFrom != nil {
		eff = *effectiveFrom
	}

	recs := make([]model.ClassCommitmentModel, 0, len(requested))
	for _, sid := range requested {
		recs = append(recs, model.ClassCommitmentModel{
			ClassCommitmentStudentID:     studentID,
			ClassCommitmentSeriesID:      sid,
			ClassCommitmentStatus:        status,
			ClassCommitmentEffectiveFrom: eff,
		})
	}

	if status != model.CommitmentStatusAttending {
		err := s.Tx.InTx(ctx, func(store CommitmentStore) error {
			for i := range recs {
				if err := store.Append(ctx, &recs[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return recs, nil
	}

	plan, err := s.activePlan(ctx, studentID, now)
	if err != nil {
		return nil, err
	}

	requestedSet := map[uuid.UUID]struct{}{}
	requestedWeekdays := map[int]struct{}{}
	for _, sid := range requested {
		requestedSet[sid] = struct{}{}
		wd, err := s.Series.WeekdayByID(ctx, sid)
		if err != nil {
			return nil, err
		}
		requestedWeekdays[wd] = struct{}{}
	}

	err = s.Tx.InTx(ctx, func(store CommitmentStore) error {
		days, err := s.attendingWeekdays(ctx, store, studentID, now, requestedSet)
		if err != nil {
			return err
		}
		for wd := range requestedWeekdays {
			days[wd] = struct{}{}
		}
		if len(days) > plan.MembershipPlanMaxDays {
			return fiber.NewError(fiber.StatusConflict, "Kuota hari latihan per minggu terlampaui")
		}
		for i := range recs {
			if err := store.Append(ctx, &recs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

/* =========================
   Reset setelah ganti plan
   ========================= */

// ResetIfExceeds dipanggil setelah reassignment plan menurunkan kuota.
// Kalau jumlah hari attending melebihi newMaxDays, SEMUA series yang
// attending di-set NOT_ATTENDING (full reset, bukan trim sebagian).
func (s *CommitmentService) ResetIfExceeds(ctx context.Context, studentID uuid.UUID, newMaxDays int) error {
	now := s.now()
	return s.Tx.InTx(ctx, func(store CommitmentStore) error {
		rows, err := store.ByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		attending := attendingKeys(rows, now, func(r model.ClassCommitmentModel) uuid.UUID {
			return r.ClassCommitmentSeriesID
		})

		days := map[int]struct{}{}
		for _, sid := range attending {
			wd, err := s.Series.WeekdayByID(ctx, sid)
			if err != nil {
				return err
			}
			days[wd] = struct{}{}
		}
		if len(days) <= newMaxDays {
			return nil
		}

		for _, sid := range attending {
			rec := &model.ClassCommitmentModel{
				ClassCommitmentStudentID:     studentID,
				ClassCommitmentSeriesID:      sid,
				ClassCommitmentStatus:        model.CommitmentStatusNotAttending,
				ClassCommitmentEffectiveFrom: now,
			}
			if err := store.Append(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

/* =========================
   Internal
   ========================= */

func (s *CommitmentService) activePlan(ctx context.Context, studentID uuid.UUID, at time.Time) (*pmodel.MembershipPlanModel, error) {
	asg, err := s.Plans.ActiveAssignment(ctx, studentID, at)
	if err != nil {
		return nil, err
	}
	if asg == nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Belum ada plan aktif")
	}
	plan, err := s.Plans.PlanByID(ctx, asg.MembershipPlanAssignmentPlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Plan tidak ditemukan")
	}
	return plan, nil
}

// attendingWeekdays = set weekday dari series yang sedang attending,
// minus series yang di-exclude (series target supaya re-attend idempoten).
func (s *CommitmentService) attendingWeekdays(ctx context.Context, store CommitmentStore, studentID uuid.UUID, at time.Time, exclude map[uuid.UUID]struct{}) (map[int]struct{}, error) {
	rows, err := store.ByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	attending := attendingKeys(rows, at, func(r model.ClassCommitmentModel) uuid.UUID {
		return r.ClassCommitmentSeriesID
	})

	days := map[int]struct{}{}
	for _, sid := range attending {
		if _, skip := exclude[sid]; skip {
			continue
		}
		wd, err := s.Series.WeekdayByID(ctx, sid)
		if err != nil {
			return nil, err
		}
		days[wd] = struct{}{}
	}
	return days, nil
}

func dedupeUUIDs(in []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	out := make([]uuid.UUID, 0, len(in))
	for _, id := range in {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
