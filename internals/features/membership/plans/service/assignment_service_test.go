// file: internals/features/membership/plans/service/assignment_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/membership/plans/model"
)

/* =========================
   In-memory fakes
   ========================= */

type fakeAssignmentStore struct {
	active  *model.MembershipPlanAssignmentModel
	created []*model.MembershipPlanAssignmentModel
	saves   int
}

func (f *fakeAssignmentStore) ActiveByStudent(_ context.Context, studentID uuid.UUID, at time.Time) (*model.MembershipPlanAssignmentModel, error) {
	if f.active != nil &&
		f.active.MembershipPlanAssignmentStudentID == studentID &&
		f.active.ActiveAt(at) {
		return f.active, nil
	}
	return nil, nil
}

func (f *fakeAssignmentStore) Create(_ context.Context, asg *model.MembershipPlanAssignmentModel) error {
	if asg.MembershipPlanAssignmentID == uuid.Nil {
		asg.MembershipPlanAssignmentID = uuid.New()
	}
	f.created = append(f.created, asg)
	return nil
}

func (f *fakeAssignmentStore) Save(_ context.Context, _ *model.MembershipPlanAssignmentModel) error {
	f.saves++
	return nil
}

type fakePlanCatalog struct {
	plans map[uuid.UUID]*model.MembershipPlanModel
}

func (f *fakePlanCatalog) ByID(_ context.Context, planID uuid.UUID) (*model.MembershipPlanModel, error) {
	return f.plans[planID], nil
}

type fakeStudentDirectory struct {
	exists bool
}

func (f *fakeStudentDirectory) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.exists, nil
}

type fakeQuotaResetter struct {
	calls []int
}

func (f *fakeQuotaResetter) ResetIfExceeds(_ context.Context, _ uuid.UUID, newMaxDays int) error {
	f.calls = append(f.calls, newMaxDays)
	return nil
}

type fakeInvoiceCreator struct {
	url   string
	err   error
	calls int
}

func (f *fakeInvoiceCreator) CreateInvoice(_ context.Context, _ uuid.UUID, _ *model.MembershipPlanModel) (string, error) {
	f.calls++
	return f.url, f.err
}

/* =========================
   Fixture
   ========================= */

type assignmentFixture struct {
	svc      *AssignmentService
	store    *fakeAssignmentStore
	quota    *fakeQuotaResetter
	invoices *fakeInvoiceCreator
	students *fakeStudentDirectory
	student  uuid.UUID
	planID   uuid.UUID
	plan     *model.MembershipPlanModel
	now      time.Time
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	t.Helper()

	f := &assignmentFixture{
		student: uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		planID:  uuid.MustParse("22222222-2222-4222-8222-222222222222"),
		now:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	f.plan = &model.MembershipPlanModel{
		MembershipPlanID:           f.planID,
		MembershipPlanName:         "Basic",
		MembershipPlanSlug:         "basic",
		MembershipPlanMaxDays:      2,
		MembershipPlanDurationDays: 30,
	}
	f.store = &fakeAssignmentStore{}
	f.quota = &fakeQuotaResetter{}
	f.invoices = &fakeInvoiceCreator{url: "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc"}
	f.students = &fakeStudentDirectory{exists: true}
	f.svc = &AssignmentService{
		Assignments: f.store,
		Plans:       &fakePlanCatalog{plans: map[uuid.UUID]*model.MembershipPlanModel{f.planID: f.plan}},
		Students:    f.students,
		Quota:       f.quota,
		Invoices:    f.invoices,
		Now:         func() time.Time { return f.now },
	}
	return f
}

func (f *assignmentFixture) today() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

/* =========================
   Tests
   ========================= */

func TestAssignTanpaAssignmentAktif(t *testing.T) {
	f := newAssignmentFixture(t)

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	asg := res.Assignment
	if asg.MembershipPlanAssignmentDurationDays != 30 {
		t.Errorf("duration = %d, want durasi nominal plan", asg.MembershipPlanAssignmentDurationDays)
	}
	if !asg.MembershipPlanAssignmentStartDate.Equal(f.today()) {
		t.Errorf("start = %v", asg.MembershipPlanAssignmentStartDate)
	}
	if f.store.saves != 0 {
		t.Errorf("saves = %d, tidak ada assignment lama yang dipotong", f.store.saves)
	}
	if len(f.quota.calls) != 1 || f.quota.calls[0] != 2 {
		t.Errorf("quota reset calls = %v, want [2]", f.quota.calls)
	}
}

func TestAssignCarryover(t *testing.T) {
	f := newAssignmentFixture(t)
	// Assignment lama: mulai 10 hari lalu, durasi 30 → sisa 20 hari.
	f.store.active = &model.MembershipPlanAssignmentModel{
		MembershipPlanAssignmentID:           uuid.New(),
		MembershipPlanAssignmentStudentID:    f.student,
		MembershipPlanAssignmentPlanID:       uuid.New(),
		MembershipPlanAssignmentStartDate:    f.today().AddDate(0, 0, -10),
		MembershipPlanAssignmentDurationDays: 30,
	}

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	if got := res.Assignment.MembershipPlanAssignmentDurationDays; got != 20 {
		t.Errorf("durasi baru = %d, want 20 (sisa carryover)", got)
	}
	if got := f.store.active.MembershipPlanAssignmentDurationDays; got != 10 {
		t.Errorf("durasi lama = %d, want dipotong jadi 10", got)
	}
	if f.store.saves != 1 {
		t.Errorf("saves = %d, want 1 (assignment lama disimpan)", f.store.saves)
	}
	if !f.store.active.EndDate().Equal(f.today()) {
		t.Errorf("end lama = %v, want tepat di start baru", f.store.active.EndDate())
	}
}

func TestAssignStartSetelahAssignmentLamaHabis(t *testing.T) {
	f := newAssignmentFixture(t)
	// Lama sudah tidak aktif pada `now`: durasi nominal penuh, tanpa potong.
	f.store.active = &model.MembershipPlanAssignmentModel{
		MembershipPlanAssignmentID:           uuid.New(),
		MembershipPlanAssignmentStudentID:    f.student,
		MembershipPlanAssignmentPlanID:       uuid.New(),
		MembershipPlanAssignmentStartDate:    f.today().AddDate(0, 0, -60),
		MembershipPlanAssignmentDurationDays: 30,
	}

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if res.Assignment.MembershipPlanAssignmentDurationDays != 30 {
		t.Errorf("duration = %d, want 30", res.Assignment.MembershipPlanAssignmentDurationDays)
	}
	if f.store.saves != 0 {
		t.Errorf("saves = %d, want 0", f.store.saves)
	}
}

func TestAssignStudentTidakDitemukan(t *testing.T) {
	f := newAssignmentFixture(t)
	f.students.exists = false

	_, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestAssignPlanTidakDitemukan(t *testing.T) {
	f := newAssignmentFixture(t)

	_, err := f.svc.Assign(context.Background(), f.student, uuid.New(), f.today())
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
	if len(f.store.created) != 0 {
		t.Errorf("created = %d, want 0", len(f.store.created))
	}
}

func TestAssignStartDateDinormalisasiKeTengahMalam(t *testing.T) {
	f := newAssignmentFixture(t)

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.now) // 12:00 siang
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !res.Assignment.MembershipPlanAssignmentStartDate.Equal(f.today()) {
		t.Errorf("start = %v, want %v", res.Assignment.MembershipPlanAssignmentStartDate, f.today())
	}
}

func TestAssignInvoicePlanBerbayar(t *testing.T) {
	f := newAssignmentFixture(t)
	f.plan.MembershipPlanPrice = 150000

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if f.invoices.calls != 1 {
		t.Fatalf("invoice calls = %d, want 1", f.invoices.calls)
	}
	if res.InvoiceURL != f.invoices.url {
		t.Errorf("invoice url = %q", res.InvoiceURL)
	}
}

func TestAssignInvoiceGagalTidakMembatalkan(t *testing.T) {
	f := newAssignmentFixture(t)
	f.plan.MembershipPlanPrice = 150000
	f.invoices.err = errors.New("midtrans down")
	f.invoices.url = ""

	res, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today())
	if err != nil {
		t.Fatalf("Assign harus tetap sukses: %v", err)
	}
	if res.InvoiceURL != "" {
		t.Errorf("invoice url = %q, want kosong", res.InvoiceURL)
	}
	if len(f.store.created) != 1 {
		t.Errorf("created = %d, want 1", len(f.store.created))
	}
}

func TestAssignPlanGratisTanpaInvoice(t *testing.T) {
	f := newAssignmentFixture(t)
	f.plan.MembershipPlanPrice = 0

	if _, err := f.svc.Assign(context.Background(), f.student, f.planID, f.today()); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if f.invoices.calls != 0 {
		t.Errorf("invoice calls = %d, want 0 untuk plan gratis", f.invoices.calls)
	}
}
