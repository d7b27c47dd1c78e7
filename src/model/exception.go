package model

import "time"

// Exception is an unexpected error that reached the error controller,
// persisted for auditing and debugging.
type Exception struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Where the error happened
	Service   string `gorm:"size:100;index" json:"service"` // APP_NAME
	Module    string `gorm:"size:100;index" json:"module"`  // e.g. "http"
	Method    string `gorm:"size:200" json:"method"`        // e.g. "GET /users/{id}"
	RequestID string `gorm:"size:64;index" json:"request_id,omitempty"`

	Message string `gorm:"type:text" json:"message"`
	Stack   string `gorm:"type:text" json:"stack,omitempty"`

	// debug | info | warn | error | fatal
	Level string `gorm:"size:20;index" json:"level"`

	// Extra context stored as JSON text (optional)
	Context string `gorm:"type:text" json:"context,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
