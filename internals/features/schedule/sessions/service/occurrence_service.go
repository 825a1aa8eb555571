// file: internals/features/schedule/sessions/service/occurrence_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	smodel "gymku_backend/internals/features/schedule/series/model"
	"gymku_backend/internals/features/schedule/sessions/model"
	helper "gymku_backend/internals/helpers"
)

/* =========================
   Store contracts
   ========================= */

type SeriesStore interface {
	// Semua versi template aktif untuk weekday tsb dengan effective_from <= effectiveAt.
	ActiveByWeekday(ctx context.Context, weekday int, effectiveAt time.Time) ([]smodel.ClassSeriesModel, error)
	ActiveByTrainer(ctx context.Context, trainerID uuid.UUID) ([]smodel.ClassSeriesModel, error)
}

type SessionStore interface {
	ActiveInRange(ctx context.Context, from, to time.Time) ([]model.ClassSessionModel, error)
	// nil, nil kalau belum ada baris aktif untuk canonical id tsb.
	ActiveByCanonicalID(ctx context.Context, canonicalID string) (*model.ClassSessionModel, error)
	Save(ctx context.Context, session *model.ClassSessionModel) error
}

type ParticipantStore interface {
	ActiveBySession(ctx context.Context, sessionID uuid.UUID) ([]model.ClassSessionParticipantModel, error)
	SoftDeleteBySession(ctx context.Context, sessionID uuid.UUID) error
	Create(ctx context.Context, p *model.ClassSessionParticipantModel) error
}

type TrainerDirectory interface {
	NameByID(ctx context.Context, trainerID uuid.UUID) (string, error)
}

// Diimplementasikan oleh commitment service.
type AttendanceDirectory interface {
	AttendingStudents(ctx context.Context, seriesID uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

/* =========================
   Result types
   ========================= */

type RosterEntry struct {
	StudentID uuid.UUID
	IsPresent bool
}

// Occurrence = satu slot konkret di kalender: virtual (dihitung) atau
// materialized (baris override).
type Occurrence struct {
	SessionID    string
	SeriesID     uuid.UUID
	TrainerID    uuid.UUID
	TrainerName  string
	Name         string
	StartAt      time.Time
	EndAt        time.Time
	Notes        *string
	IsOverridden bool
	Materialized bool
	Roster       []RosterEntry
}

/* =========================
   Service
   ========================= */

type OccurrenceService struct {
	Series       SeriesStore
	Sessions     SessionStore
	Participants ParticipantStore
	Trainers     TrainerDirectory
	Attendance   AttendanceDirectory
	Now          func() time.Time
}

func (s *OccurrenceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* =========================
   List: generate + merge
   ========================= */

// ListOccurrences mengekspansi template mingguan jadi occurrence untuk
// [startDate, endDate] (inklusif, tanggal saja) dan merge dengan baris
// override berdasarkan canonical id. Hasil terurut naik menurut jam mulai.
//
// Catatan: efektivitas template dievaluasi terhadap time.Now(), bukan
// terhadap tanggal yang sedang digenerate. Untuk range yang melewati
// pergantian versi template, semua tanggal memakai versi yang berlaku
// sekarang. Lihat DESIGN.md sebelum mengubah ini.
func (s *OccurrenceService) ListOccurrences(ctx context.Context, startDate, endDate time.Time) ([]Occurrence, error) {
	start := truncateToDate(startDate)
	end := truncateToDate(endDate)
	if end.Before(start) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Range tanggal tidak valid")
	}

	now := s.now()

	// Template per weekday di-fetch sekali per weekday yang muncul di range.
	tplByWeekday := map[int][]smodel.ClassSeriesModel{}

	var virtuals []Occurrence
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := int(d.Weekday()) // 0=Minggu .. 6=Sabtu

		tpls, ok := tplByWeekday[wd]
		if !ok {
			all, err := s.Series.ActiveByWeekday(ctx, wd, now)
			if err != nil {
				return nil, err
			}
			tpls = latestPerTrainer(all)
			tplByWeekday[wd] = tpls
		}

		for _, tpl := range tpls {
			startAt, endAt, err := occurrenceWindow(d, tpl.ClassSeriesStartTime, tpl.ClassSeriesDurationMin)
			if err != nil {
				return nil, err
			}
			virtuals = append(virtuals, Occurrence{
				SessionID: BuildSessionID(tpl.ClassSeriesName, d, tpl.ClassSeriesStartTime, tpl.ClassSeriesTrainerID),
				SeriesID:  tpl.ClassSeriesID,
				TrainerID: tpl.ClassSeriesTrainerID,
				Name:      tpl.ClassSeriesName,
				StartAt:   startAt,
				EndAt:     endAt,
			})
		}
	}

	// Override yang jam mulainya jatuh di range.
	overrides, err := s.Sessions.ActiveInRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	ovByID := make(map[string]*model.ClassSessionModel, len(overrides))
	for i := range overrides {
		ovByID[overrides[i].ClassSessionCanonicalID] = &overrides[i]
	}

	trainerNames := map[uuid.UUID]string{}

	out := make([]Occurrence, 0, len(virtuals))
	for _, v := range virtuals {
		if ov, found := ovByID[v.SessionID]; found {
			occ, err := s.fromOverride(ctx, ov, trainerNames)
			if err != nil {
				return nil, err
			}
			out = append(out, occ)
			delete(ovByID, v.SessionID)
			continue
		}

		students, err := s.Attendance.AttendingStudents(ctx, v.SeriesID, now)
		if err != nil {
			return nil, err
		}
		roster := make([]RosterEntry, 0, len(students))
		for _, st := range students {
			roster = append(roster, RosterEntry{StudentID: st})
		}
		v.Roster = roster
		v.TrainerName = s.trainerNameQuiet(ctx, v.TrainerID, trainerNames)
		out = append(out, v)
	}

	// Override yang tidak match template manapun (mis. template sudah
	// diganti versinya) tetap ditampilkan.
	for _, ov := range ovByID {
		occ, err := s.fromOverride(ctx, ov, trainerNames)
		if err != nil {
			return nil, err
		}
		out = append(out, occ)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].SessionID < out[j].SessionID
		}
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out, nil
}

func (s *OccurrenceService) fromOverride(ctx context.Context, ov *model.ClassSessionModel, names map[uuid.UUID]string) (Occurrence, error) {
	parts, err := s.Participants.ActiveBySession(ctx, ov.ClassSessionID)
	if err != nil {
		return Occurrence{}, err
	}
	roster := make([]RosterEntry, 0, len(parts))
	for _, p := range parts {
		roster = append(roster, RosterEntry{
			StudentID: p.ClassSessionParticipantStudentID,
			IsPresent: p.ClassSessionParticipantIsPresent,
		})
	}
	return Occurrence{
		SessionID:    ov.ClassSessionCanonicalID,
		SeriesID:     ov.ClassSessionSeriesID,
		TrainerID:    ov.ClassSessionTrainerID,
		TrainerName:  s.trainerNameQuiet(ctx, ov.ClassSessionTrainerID, names),
		Name:         ov.ClassSessionName,
		StartAt:      ov.ClassSessionStartAt,
		EndAt:        ov.ClassSessionEndAt,
		Notes:        ov.ClassSessionNotes,
		IsOverridden: ov.ClassSessionIsOverridden,
		Materialized: true,
		Roster:       roster,
	}, nil
}

// Saat listing, trainer yang hilang tidak boleh menggagalkan response.
func (s *OccurrenceService) trainerNameQuiet(ctx context.Context, trainerID uuid.UUID, cache map[uuid.UUID]string) string {
	if name, ok := cache[trainerID]; ok {
		return name
	}
	name, err := s.Trainers.NameByID(ctx, trainerID)
	if err != nil {
		name = ""
	}
	cache[trainerID] = name
	return name
}

/* =========================
   Materialize + writes
   ========================= */

// Materialize memastikan ada baris persisted untuk canonical id tsb.
// Dipanggil sebelum setiap write ke occurrence (catatan / roster).
func (s *OccurrenceService) Materialize(ctx context.Context, sessionID string) (*model.ClassSessionModel, error) {
	parts, err := ParseSessionID(sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Sessions.ActiveByCanonicalID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if _, err := s.Trainers.NameByID(ctx, parts.TrainerID); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Trainer tidak ditemukan")
	}

	tpl, err := s.findTemplate(ctx, parts)
	if err != nil {
		return nil, err
	}

	startAt, endAt, err := occurrenceWindow(parts.Date, tpl.ClassSeriesStartTime, tpl.ClassSeriesDurationMin)
	if err != nil {
		return nil, err
	}

	row := &model.ClassSessionModel{
		ClassSessionCanonicalID: sessionID,
		ClassSessionSeriesID:    tpl.ClassSeriesID,
		ClassSessionTrainerID:   tpl.ClassSeriesTrainerID,
		ClassSessionName:        tpl.ClassSeriesName,
		ClassSessionStartAt:     startAt,
		ClassSessionEndAt:       endAt,
	}
	if err := s.Sessions.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateNotes materialize lalu set catatan; flag overridden ikut naik.
func (s *OccurrenceService) UpdateNotes(ctx context.Context, sessionID string, notes string) (*model.ClassSessionModel, error) {
	row, err := s.Materialize(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	row.ClassSessionNotes = &notes
	row.ClassSessionIsOverridden = true
	if err := s.Sessions.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// ReplaceRoster mengganti seluruh roster: baris lama di-soft-delete,
// lalu satu baris baru per entri (duplikat student dibuang supaya
// invariannya kejaga: satu baris aktif per (session, student)).
func (s *OccurrenceService) ReplaceRoster(ctx context.Context, sessionID string, entries []RosterEntry) (*model.ClassSessionModel, error) {
	row, err := s.Materialize(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.Participants.SoftDeleteBySession(ctx, row.ClassSessionID); err != nil {
		return nil, err
	}

	seen := map[uuid.UUID]struct{}{}
	for _, e := range entries {
		if _, dup := seen[e.StudentID]; dup {
			continue
		}
		seen[e.StudentID] = struct{}{}
		p := &model.ClassSessionParticipantModel{
			ClassSessionParticipantSessionID: row.ClassSessionID,
			ClassSessionParticipantStudentID: e.StudentID,
			ClassSessionParticipantIsPresent: e.IsPresent,
		}
		if err := s.Participants.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	row.ClassSessionIsOverridden = true
	if err := s.Sessions.Save(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

/* =========================
   Internal
   ========================= */

func (s *OccurrenceService) findTemplate(ctx context.Context, parts SessionIDParts) (*smodel.ClassSeriesModel, error) {
	all, err := s.Series.ActiveByTrainer(ctx, parts.TrainerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	wd := int(parts.Date.Weekday())

	var best *smodel.ClassSeriesModel
	for i := range all {
		tpl := &all[i]
		if tpl.ClassSeriesDayOfWeek != wd {
			continue
		}
		if tpl.ClassSeriesStartTime != parts.StartHHMM {
			continue
		}
		if helper.Slugify(tpl.ClassSeriesName, 100) != parts.Slug {
			continue
		}
		if tpl.ClassSeriesEffectiveFrom.After(now) {
			continue
		}
		if best == nil || tpl.ClassSeriesEffectiveFrom.After(best.ClassSeriesEffectiveFrom) {
			best = tpl
		}
	}
	if best == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Template kelas tidak ditemukan")
	}
	return best, nil
}

// latestPerTrainer menyisakan satu versi per (trainer, weekday): yang
// effective_from-nya paling baru. Input sudah difilter per weekday.
func latestPerTrainer(all []smodel.ClassSeriesModel) []smodel.ClassSeriesModel {
	best := map[uuid.UUID]int{}
	for i := range all {
		cur, ok := best[all[i].ClassSeriesTrainerID]
		if !ok || all[i].ClassSeriesEffectiveFrom.After(all[cur].ClassSeriesEffectiveFrom) {
			best[all[i].ClassSeriesTrainerID] = i
		}
	}
	out := make([]smodel.ClassSeriesModel, 0, len(best))
	for _, i := range best {
		out = append(out, all[i])
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].ClassSeriesStartTime < out[b].ClassSeriesStartTime
	})
	return out
}

func occurrenceWindow(date time.Time, startHHMM string, durationMin int) (time.Time, time.Time, error) {
	tod, err := time.Parse(sessionIDTimeLayout, startHHMM)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Jam mulai template tidak valid")
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, date.Location())
	return startAt, startAt.Add(time.Duration(durationMin) * time.Minute), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
