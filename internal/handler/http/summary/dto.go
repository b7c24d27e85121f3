package summary

import (
	"time"

	"summarizer/internal/domain/entity"
)

// DTO is the full summary record returned by read, list and update.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	URL       string    `json:"url" example:"https://testdriven.io/"`
	Summary   string    `json:"summary" example:"A tutorial site for Python and JavaScript."`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T09:30:00Z"`
}

// ResponseDTO is the {id, url} body returned by create and delete.
type ResponseDTO struct {
	ID  int64  `json:"id" example:"1"`
	URL string `json:"url" example:"https://testdriven.io/"`
}

// CreateRequest documents the create payload.
type CreateRequest struct {
	URL string `json:"url" example:"https://testdriven.io"`
}

// UpdateRequest documents the update payload.
type UpdateRequest struct {
	URL     string `json:"url" example:"https://testdriven.io"`
	Summary string `json:"summary" example:"updated!"`
}

// ValidationErrorResponse documents the 422 body.
type ValidationErrorResponse struct {
	Detail []entity.FieldError `json:"detail"`
}

// ErrorResponse documents the 404 and 5xx bodies.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Summary not found"`
}

func toDTO(s *entity.Summary) DTO {
	return DTO{
		ID:        s.ID,
		URL:       s.URL,
		Summary:   s.Summary,
		CreatedAt: s.CreatedAt,
	}
}

// toResponseDTO echoes the URL in canonical form. Rows written before
// canonicalisation existed are returned as stored when they fail to parse.
func toResponseDTO(s *entity.Summary) ResponseDTO {
	u := s.URL
	if canonical, err := entity.CanonicalURL(u); err == nil {
		u = canonical
	}
	return ResponseDTO{ID: s.ID, URL: u}
}
