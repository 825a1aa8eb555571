// file: internals/features/schedule/sessions/dto/session_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gymku_backend/internals/features/schedule/sessions/service"
)

var validate = validator.New()

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type UpdateSessionNotesRequest struct {
	Notes string `json:"class_session_notes" validate:"required,max=2000"`
}

func (r UpdateSessionNotesRequest) Validate() error { return validate.Struct(r) }

type RosterEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	IsPresent bool      `json:"is_present"`
}

type ReplaceRosterRequest struct {
	Participants []RosterEntryRequest `json:"participants" validate:"required,dive"`
}

func (r ReplaceRosterRequest) Validate() error { return validate.Struct(r) }

func (r ReplaceRosterRequest) ToEntries() []service.RosterEntry {
	out := make([]service.RosterEntry, 0, len(r.Participants))
	for _, p := range r.Participants {
		out = append(out, service.RosterEntry{StudentID: p.StudentID, IsPresent: p.IsPresent})
	}
	return out
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type RosterEntryResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	IsPresent bool      `json:"is_present"`
}

type SessionOccurrenceResponse struct {
	SessionID    string                `json:"class_session_id"`
	SeriesID     uuid.UUID             `json:"class_series_id"`
	TrainerID    uuid.UUID             `json:"trainer_id"`
	TrainerName  string                `json:"trainer_name,omitempty"`
	Name         string                `json:"class_session_name"`
	StartAt      time.Time             `json:"class_session_start_at"`
	EndAt        time.Time             `json:"class_session_end_at"`
	Notes        *string               `json:"class_session_notes,omitempty"`
	IsOverridden bool                  `json:"class_session_is_overridden"`
	Materialized bool                  `json:"class_session_materialized"`
	Roster       []RosterEntryResponse `json:"roster"`
}

func FromOccurrence(o service.Occurrence) SessionOccurrenceResponse {
	roster := make([]RosterEntryResponse, 0, len(o.Roster))
	for _, r := range o.Roster {
		roster = append(roster, RosterEntryResponse{StudentID: r.StudentID, IsPresent: r.IsPresent})
	}
	return SessionOccurrenceResponse{
		SessionID:    o.SessionID,
		SeriesID:     o.SeriesID,
		TrainerID:    o.TrainerID,
		TrainerName:  o.TrainerName,
		Name:         o.Name,
		StartAt:      o.StartAt,
		EndAt:        o.EndAt,
		Notes:        o.Notes,
		IsOverridden: o.IsOverridden,
		Materialized: o.Materialized,
		Roster:       roster,
	}
}

func FromOccurrences(os []service.Occurrence) []SessionOccurrenceResponse {
	out := make([]SessionOccurrenceResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOccurrence(o))
	}
	return out
}
