package storage

import (
	"encoding/json"
	"fmt"

	"bid-ledger-api/internal/models"
)

// EncodeCollection serializes the collection as an ordered JSON array.
func EncodeCollection(apps []models.Application) ([]byte, error) {
	if apps == nil {
		apps = []models.Application{}
	}
	return json.Marshal(apps)
}

// DecodeCollection parses a JSON array produced by EncodeCollection.
// An empty payload is an empty collection.
func DecodeCollection(data []byte) ([]models.Application, error) {
	if len(data) == 0 {
		return []models.Application{}, nil
	}
	var apps []models.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}
