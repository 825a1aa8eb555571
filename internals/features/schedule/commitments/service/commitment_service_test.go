// file: internals/features/schedule/commitments/service/commitment_service_test.go
package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	pmodel "gymku_backend/internals/features/membership/plans/model"
	"gymku_backend/internals/features/schedule/commitments/model"
)

/* =========================
   In-memory fakes
   ========================= */

// fakeCommitmentStore sekaligus mengimplementasikan Atomic: InTx snapshot
// slice dan restore kalau fn error, meniru rollback transaction.
type fakeCommitmentStore struct {
	rows []model.ClassCommitmentModel
}

func (f *fakeCommitmentStore) Append(_ context.Context, rec *model.ClassCommitmentModel) error {
	if rec.ClassCommitmentID == uuid.Nil {
		rec.ClassCommitmentID = uuid.New()
	}
	f.rows = append(f.rows, *rec)
	return nil
}

func (f *fakeCommitmentStore) ByStudent(_ context.Context, studentID uuid.UUID) ([]model.ClassCommitmentModel, error) {
	var out []model.ClassCommitmentModel
	for _, r := range f.rows {
		if r.ClassCommitmentStudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCommitmentStore) ByStudentSeriesUntil(_ context.Context, studentID, seriesID uuid.UUID, until time.Time) ([]model.ClassCommitmentModel, error) {
	var out []model.ClassCommitmentModel
	for _, r := range f.rows {
		if r.ClassCommitmentStudentID == studentID &&
			r.ClassCommitmentSeriesID == seriesID &&
			!r.ClassCommitmentEffectiveFrom.After(until) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClassCommitmentEffectiveFrom.After(out[j].ClassCommitmentEffectiveFrom)
	})
	return out, nil
}

func (f *fakeCommitmentStore) BySeries(_ context.Context, seriesID uuid.UUID) ([]model.ClassCommitmentModel, error) {
	var out []model.ClassCommitmentModel
	for _, r := range f.rows {
		if r.ClassCommitmentSeriesID == seriesID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCommitmentStore) InTx(_ context.Context, fn func(store CommitmentStore) error) error {
	snapshot := append([]model.ClassCommitmentModel(nil), f.rows...)
	if err := fn(f); err != nil {
		f.rows = snapshot
		return err
	}
	return nil
}

type fakeSeriesDirectory struct {
	weekdays map[uuid.UUID]int
}

func (f *fakeSeriesDirectory) WeekdayByID(_ context.Context, seriesID uuid.UUID) (int, error) {
	wd, ok := f.weekdays[seriesID]
	if !ok {
		return 0, fiber.NewError(fiber.StatusNotFound, "Series tidak ditemukan")
	}
	return wd, nil
}

type fakePlanDirectory struct {
	plans      map[uuid.UUID]*pmodel.MembershipPlanModel
	assignment *pmodel.MembershipPlanAssignmentModel
}

func (f *fakePlanDirectory) PlanByID(_ context.Context, planID uuid.UUID) (*pmodel.MembershipPlanModel, error) {
	return f.plans[planID], nil
}

func (f *fakePlanDirectory) ActiveAssignment(_ context.Context, studentID uuid.UUID, at time.Time) (*pmodel.MembershipPlanAssignmentModel, error) {
	if f.assignment != nil &&
		f.assignment.MembershipPlanAssignmentStudentID == studentID &&
		f.assignment.ActiveAt(at) {
		return f.assignment, nil
	}
	return nil, nil
}

/* =========================
   Fixture
   ========================= */

type commitmentFixture struct {
	svc     *CommitmentService
	store   *fakeCommitmentStore
	plans   *fakePlanDirectory
	student uuid.UUID
	planID  uuid.UUID
	// Series dengan weekday tetap: A=Senin, B=Selasa, C=Rabu, D=Senin.
	seriesA, seriesB, seriesC, seriesD uuid.UUID
	now                                time.Time
}

func newCommitmentFixture(t *testing.T, maxDays int) *commitmentFixture {
	t.Helper()

	f := &commitmentFixture{
		student: uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		planID:  uuid.MustParse("22222222-2222-4222-8222-222222222222"),
		seriesA: uuid.MustParse("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"),
		seriesB: uuid.MustParse("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"),
		seriesC: uuid.MustParse("cccccccc-cccc-4ccc-8ccc-cccccccccccc"),
		seriesD: uuid.MustParse("dddddddd-dddd-4ddd-8ddd-dddddddddddd"),
		now:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	f.store = &fakeCommitmentStore{}
	f.plans = &fakePlanDirectory{
		plans: map[uuid.UUID]*pmodel.MembershipPlanModel{
			f.planID: {
				MembershipPlanID:           f.planID,
				MembershipPlanName:         "Basic",
				MembershipPlanSlug:         "basic",
				MembershipPlanMaxDays:      maxDays,
				MembershipPlanDurationDays: 30,
			},
		},
		assignment: &pmodel.MembershipPlanAssignmentModel{
			MembershipPlanAssignmentID:           uuid.New(),
			MembershipPlanAssignmentStudentID:    f.student,
			MembershipPlanAssignmentPlanID:       f.planID,
			MembershipPlanAssignmentStartDate:    f.now.AddDate(0, 0, -10),
			MembershipPlanAssignmentDurationDays: 30,
		},
	}
	f.svc = &CommitmentService{
		Commitments: f.store,
		Tx:          f.store,
		Series: &fakeSeriesDirectory{weekdays: map[uuid.UUID]int{
			f.seriesA: 1,
			f.seriesB: 2,
			f.seriesC: 3,
			f.seriesD: 1,
		}},
		Plans: f.plans,
		Now:   func() time.Time { return f.now },
	}
	return f
}

func (f *commitmentFixture) seed(seriesID uuid.UUID, status string, effectiveFrom time.Time) {
	f.store.rows = append(f.store.rows, model.ClassCommitmentModel{
		ClassCommitmentID:            uuid.New(),
		ClassCommitmentStudentID:     f.student,
		ClassCommitmentSeriesID:      seriesID,
		ClassCommitmentStatus:        status,
		ClassCommitmentEffectiveFrom: effectiveFrom,
	})
}

/* =========================
   Resolver
   ========================= */

func TestCurrentStatusDefaultNotAttending(t *testing.T) {
	f := newCommitmentFixture(t, 2)

	got, err := f.svc.CurrentStatus(context.Background(), f.student, f.seriesA, f.now)
	if err != nil {
		t.Fatalf("CurrentStatus: %v", err)
	}
	if got != model.CommitmentStatusNotAttending {
		t.Fatalf("status = %q, want NOT_ATTENDING tanpa history", got)
	}
}

func TestCurrentStatusBarisTerakhirMenang(t *testing.T) {
	f := newCommitmentFixture(t, 2)
	f.seed(f.seriesA, model.CommitmentStatusAttending, f.now.Add(-48*time.Hour))
	f.seed(f.seriesA, model.CommitmentStatusNotAttending, f.now.Add(-24*time.Hour))

	got, err := f.svc.CurrentStatus(context.Background(), f.student, f.seriesA, f.now)
	if err != nil {
		t.Fatalf("CurrentStatus: %v", err)
	}
	if got != model.CommitmentStatusNotAttending {
		t.Fatalf("status sekarang = %q, want NOT_ATTENDING", got)
	}

	// Point-in-time: di antara dua baris, yang lama yang berlaku.
	got, err = f.svc.CurrentStatus(context.Background(), f.student, f.seriesA, f.now.Add(-36*time.Hour))
	if err != nil {
		t.Fatalf("CurrentStatus (-36h): %v", err)
	}
	if got != model.CommitmentStatusAttending {
		t.Fatalf("status -36h = %q, want ATTENDING", got)
	}
}

func TestHistoryTerurutTerbaruDulu(t *testing.T) {
	f := newCommitmentFixture(t, 2)
	f.seed(f.seriesA, model.CommitmentStatusAttending, f.now.Add(-72*time.Hour))
	f.seed(f.seriesA, model.CommitmentStatusTentative, f.now.Add(-48*time.Hour))
	f.seed(f.seriesA, model.CommitmentStatusNotAttending, f.now.Add(24*time.Hour)) // future, harus kefilter

	rows, err := f.svc.History(context.Background(), f.student, f.seriesA)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (baris future tidak ikut)", len(rows))
	}
	if rows[0].ClassCommitmentStatus != model.CommitmentStatusTentative {
		t.Errorf("rows[0] = %q, want baris terbaru duluan", rows[0].ClassCommitmentStatus)
	}
}

func TestCurrentlyAttendingBarisFutureDibuangTotal(t *testing.T) {
	f := newCommitmentFixture(t, 2)
	// A: attending kemarin, NOT_ATTENDING besok → sekarang masih attending.
	f.seed(f.seriesA, model.CommitmentStatusAttending, f.now.Add(-24*time.Hour))
	f.seed(f.seriesA, model.CommitmentStatusNotAttending, f.now.Add(24*time.Hour))
	// B: baru attending besok → sekarang belum.
	f.seed(f.seriesB, model.CommitmentStatusAttending, f.now.Add(24*time.Hour))

	got, err := f.svc.CurrentlyAttending(context.Background(), f.student, f.now)
	if err != nil {
		t.Fatalf("CurrentlyAttending: %v", err)
	}
	if len(got) != 1 || got[0] != f.seriesA {
		t.Fatalf("attending = %v, want hanya seriesA", got)
	}
}

func TestAttendingStudentsPerSeries(t *testing.T) {
	f := newCommitmentFixture(t, 2)
	other := uuid.MustParse("33333333-3333-4333-8333-333333333333")
	f.seed(f.seriesA, model.CommitmentStatusAttending, f.now.Add(-24*time.Hour))
	f.store.rows = append(f.store.rows, model.ClassCommitmentModel{
		ClassCommitmentID:            uuid.New(),
		ClassCommitmentStudentID:     other,
		ClassCommitmentSeriesID:      f.seriesA,
		ClassCommitmentStatus:        model.CommitmentStatusTentative,
		ClassCommitmentEffectiveFrom: f.now.Add(-24 * time.Hour),
	})

	got, err := f.svc.AttendingStudents(context.Background(), f.seriesA, f.now)
	if err != nil {
		t.Fatalf("AttendingStudents: %v", err)
	}
	if len(got) != 1 || got[0] != f.student {
		t.Fatalf("students = %v, want hanya yang ATTENDING", got)
	}
}
