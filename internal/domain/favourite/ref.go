package favourite

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidRef reports a favourite reference that carried no usable id
var ErrInvalidRef = errors.New("favourite reference carries no tour id")

// Ref is a favourite reference as clients send it: either a raw tour id
// string or an object carrying the id under "id" or "tourId". It is
// normalized to a canonical uuid at the ingress boundary so every later
// membership check compares ids only.
type Ref struct {
	TourID uuid.UUID
}

// UnmarshalJSON accepts both reference forms
func (r *Ref) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id, parseErr := uuid.Parse(s)
		if parseErr != nil {
			return ErrInvalidRef
		}
		r.TourID = id
		return nil
	}

	var obj struct {
		ID     string `json:"id"`
		TourID string `json:"tourId"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return ErrInvalidRef
	}

	raw := obj.ID
	if raw == "" {
		raw = obj.TourID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return ErrInvalidRef
	}
	r.TourID = id
	return nil
}

// MarshalJSON emits the canonical string form
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.TourID.String())
}

// IDSet builds a membership set from a user's favourite tour ids
func IDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
