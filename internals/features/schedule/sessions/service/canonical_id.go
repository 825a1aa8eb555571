// file: internals/features/schedule/sessions/service/canonical_id.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "gymku_backend/internals/helpers"
)

// Canonical session id: <slug(nama)>__<YYYY-MM-DD>__<HH:MM>__<trainer_id>.
// Format ini dipakai di URL & cache, jadi harus stabil bit-for-bit.
// Trainer id wajib ikut: dua trainer bisa punya kelas dengan nama dan jam
// yang sama.
const sessionIDSep = "__"

const (
	sessionIDDateLayout = "2006-01-02"
	sessionIDTimeLayout = "15:04"
)

// BuildSessionID fungsi murni; input sama selalu menghasilkan id sama.
func BuildSessionID(seriesName string, date time.Time, startHHMM string, trainerID uuid.UUID) string {
	return strings.Join([]string{
		helper.Slugify(seriesName, 100),
		date.Format(sessionIDDateLayout),
		startHHMM,
		trainerID.String(),
	}, sessionIDSep)
}

type SessionIDParts struct {
	Slug      string
	Date      time.Time
	StartHHMM string
	TrainerID uuid.UUID
}

// ParseSessionID membongkar canonical id jadi 4 bagian.
// Slug hasil Slugify tidak pernah mengandung "_", jadi split "__" aman.
func ParseSessionID(id string) (SessionIDParts, error) {
	parts := strings.Split(strings.TrimSpace(id), sessionIDSep)
	if len(parts) != 4 {
		return SessionIDParts{}, fiber.NewError(fiber.StatusBadRequest, "Format session id tidak valid")
	}

	date, err := time.Parse(sessionIDDateLayout, parts[1])
	if err != nil {
		return SessionIDParts{}, fiber.NewError(fiber.StatusBadRequest, "Tanggal pada session id tidak valid")
	}
	if _, err := time.Parse(sessionIDTimeLayout, parts[2]); err != nil {
		return SessionIDParts{}, fiber.NewError(fiber.StatusBadRequest, "Jam pada session id tidak valid")
	}
	trainerID, err := uuid.Parse(parts[3])
	if err != nil {
		return SessionIDParts{}, fiber.NewError(fiber.StatusBadRequest, "Trainer id pada session id tidak valid")
	}

	return SessionIDParts{
		Slug:      parts[0],
		Date:      date,
		StartHHMM: parts[2],
		TrainerID: trainerID,
	}, nil
}
