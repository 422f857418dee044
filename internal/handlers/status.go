package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/icsts-conf/registration-api/internal/models"
)

type StatusOutput struct {
	Body struct {
		Open                     bool       `json:"open" doc:"Whether the registration period is still open"`
		Deadline                 *time.Time `json:"deadline,omitempty" doc:"Registration deadline, if one is configured"`
		ChildcareCapacityReached bool       `json:"childcareCapacityReached" doc:"When true the form hides the nursing option"`
	}
}

// HandleStatus backs the public registration page: whether the form is still
// open and whether the nursing option should be offered.
func (h *RegistrationHandler) HandleStatus(ctx context.Context, input *struct{}) (*StatusOutput, error) {
	var capacity models.ChildcareCapacity
	if err := h.db.First(&capacity, models.ChildcareCapacityID).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to read capacity status")
	}

	out := &StatusOutput{}
	out.Body.Open = h.registrationOpen()
	if !h.cfg.Deadline.IsZero() {
		deadline := h.cfg.Deadline
		out.Body.Deadline = &deadline
	}
	out.Body.ChildcareCapacityReached = capacity.Reached
	return out, nil
}
