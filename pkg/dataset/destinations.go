package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"travel-vlogs/pkg/models"
)

//go:embed destinations.json
var destinationsJSON []byte

// Destinations returns the built-in destinations in display order
func Destinations() ([]models.Destination, error) {
	var destinations []models.Destination
	if err := json.Unmarshal(destinationsJSON, &destinations); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}
	return destinations, nil
}
