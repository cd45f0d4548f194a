package testmodels

import "github.com/go-openapi/strfmt"

// Car is the worked example the accessor tests are built around.
type Car struct {

	// Manufacturer of the car.
	// Required: true
	Make *string `json:"Make"`

	// Model name of the car.
	// Required: true
	Model *string `json:"Model"`

	// Model year of the car.
	// Required: true
	ModelYear *int64 `json:"ModelYear"`

	// trim Level
	TrimLevel string `json:"TrimLevel,omitempty"`

	// Timestamp when the record was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Timestamp when the record was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}
