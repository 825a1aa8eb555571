// file: internals/features/schedule/sessions/service/canonical_id_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestBuildSessionIDDeterministik(t *testing.T) {
	trainer := uuid.MustParse("5e0c7d8a-3f7e-4d22-9b1c-0a8a33f1c001")
	date := mustDate(t, "2026-09-04")

	a := BuildSessionID("Yoga Basics", date, "09:00", trainer)
	b := BuildSessionID("Yoga Basics", date, "09:00", trainer)
	if a != b {
		t.Fatalf("id tidak deterministik: %q vs %q", a, b)
	}

	want := "yoga-basics__2026-09-04__09:00__" + trainer.String()
	if a != want {
		t.Fatalf("id = %q, want %q", a, want)
	}
}

func TestBuildSessionIDBedaTrainerBedaID(t *testing.T) {
	date := mustDate(t, "2026-09-04")
	a := BuildSessionID("Yoga Basics", date, "09:00", uuid.New())
	b := BuildSessionID("Yoga Basics", date, "09:00", uuid.New())
	if a == b {
		t.Fatal("dua trainer berbeda menghasilkan id yang sama")
	}
}

func TestParseSessionIDRoundTrip(t *testing.T) {
	trainer := uuid.New()
	date := mustDate(t, "2026-09-04")
	id := BuildSessionID("HIIT Cardio 2.0", date, "18:30", trainer)

	parts, err := ParseSessionID(id)
	if err != nil {
		t.Fatalf("ParseSessionID(%q): %v", id, err)
	}
	if parts.Slug != "hiit-cardio-2-0" {
		t.Errorf("slug = %q", parts.Slug)
	}
	if !parts.Date.Equal(date) {
		t.Errorf("date = %v, want %v", parts.Date, date)
	}
	if parts.StartHHMM != "18:30" {
		t.Errorf("start = %q", parts.StartHHMM)
	}
	if parts.TrainerID != trainer {
		t.Errorf("trainer = %v, want %v", parts.TrainerID, trainer)
	}
}

func TestParseSessionIDInvalid(t *testing.T) {
	trainer := uuid.New().String()
	cases := []string{
		"",
		"yoga-basics",
		"yoga-basics__2026-09-04__09:00",                         // cuma 3 bagian
		"yoga-basics__2026-09-04__09:00__" + trainer + "__extra", // 5 bagian
		"yoga-basics__04-09-2026__09:00__" + trainer,             // tanggal salah format
		"yoga-basics__2026-09-04__9am__" + trainer,               // jam salah format
		"yoga-basics__2026-09-04__09:00__bukan-uuid",
	}
	for _, id := range cases {
		_, err := ParseSessionID(id)
		if err == nil {
			t.Errorf("ParseSessionID(%q) tidak error", id)
			continue
		}
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Errorf("ParseSessionID(%q) err = %v, want 400", id, err)
		}
	}
}
