package service

import (
	"encoding/json"
	"fmt"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
)

// Change request payloads form a tagged union keyed by the request type.
// Decoding and validating them at proposal time turns a malformed payload
// into a construction-time validation error instead of a surprise during
// apply.

// AddInstrumentPayload is the new-data payload for add_instrument requests
type AddInstrumentPayload struct {
	InstrumentID uuid.UUID `json:"instrument_id" validate:"required"`
	Quantity     int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Position     *string   `json:"position,omitempty" validate:"omitempty,max=20"`
	Note         *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// RemoveInstrumentPayload is the new-data payload for remove_instrument requests
type RemoveInstrumentPayload struct {
	InstrumentID uuid.UUID `json:"instrument_id" validate:"required"`
}

// ModifyItemPayload is the new-data payload for modify_quantity and
// modify_position requests. All fields present in the payload are applied
// to the item, not only the field the type names.
type ModifyItemPayload struct {
	InstrumentID uuid.UUID `json:"instrument_id" validate:"required"`
	Quantity     *int      `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Position     *string   `json:"position,omitempty" validate:"omitempty,max=20"`
	Note         *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// Updates converts the payload into a column update map covering every
// present field
func (p *ModifyItemPayload) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Quantity != nil {
		updates["quantity"] = *p.Quantity
	}
	if p.Position != nil {
		updates["position"] = *p.Position
	}
	if p.Note != nil {
		updates["note"] = *p.Note
	}
	return updates
}

// decodePayload unmarshals the raw new-data of a change request into the
// variant matching its type. create_tray and deactivate_tray carry no
// payload and decode to nil.
func decodePayload(requestType models.ChangeRequestType, raw json.RawMessage) (interface{}, error) {
	switch requestType {
	case models.ChangeRequestTypeAddInstrument:
		var p AddInstrumentPayload
		if err := unmarshalStrictEnough(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case models.ChangeRequestTypeRemoveInstrument:
		var p RemoveInstrumentPayload
		if err := unmarshalStrictEnough(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case models.ChangeRequestTypeModifyQuantity, models.ChangeRequestTypeModifyPosition:
		var p ModifyItemPayload
		if err := unmarshalStrictEnough(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case models.ChangeRequestTypeCreateTray, models.ChangeRequestTypeDeactivateTray:
		return nil, nil
	default:
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown change request type %q", requestType))
	}
}

func unmarshalStrictEnough(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		return apperrors.NewValidationError("new_data", "payload is required for this change request type")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return apperrors.NewValidationError("new_data", fmt.Sprintf("malformed payload: %v", err))
	}
	return nil
}
