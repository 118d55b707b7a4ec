package profile

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Encode serializes a profile into its stored document form.
func Encode(p *Profile) ([]byte, error) {
	doc, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode profile %s: %w", p.ID, err)
	}
	return doc, nil
}

// Decode unmarshals a stored document and checks it belongs to the key it was
// stored under. The result is normalized.
func Decode(doc []byte, ownerID, profileID uuid.UUID) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", profileID, err)
	}
	if p.ID != profileID || p.OwnerID != ownerID {
		return nil, fmt.Errorf("profile %s document carries id %s owner %s", profileID, p.ID, p.OwnerID)
	}
	p.Normalize()
	return &p, nil
}
