package entities

import "time"

// Metadata identifies a report produced by the explorer
// + Cities: cities that were analyzed, in selection order
// + Type: type of data, e.g. bikeshare-report
// + Stage: component that produced the data
// + Message: free text, the explorer stores the run ID here
// + CreatedAt: UTC time when the report was started
type Metadata struct {
	Cities    []string  `json:"cities"`
	Type      string    `json:"type"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(cities []string, dataType string, stage string, message string) Metadata {
	return Metadata{
		Cities:    cities,
		Type:      dataType,
		Stage:     stage,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
