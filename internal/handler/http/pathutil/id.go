package pathutil

import (
	"net/http"

	"summarizer/internal/domain/entity"
)

// ExtractID reads the named wildcard from a ServeMux pattern such as
// "GET /summaries/{id}/" and validates it as a positive integer.
//
// The returned FieldError is located at ["path", name] and carries the raw
// segment as its input, so "/summaries/0/" reports greater_than with input "0".
//
// Example:
//
//	id, fe := ExtractID(r, "id")
//	// "/summaries/123/" → 123, nil
func ExtractID(r *http.Request, name string) (int64, *entity.FieldError) {
	return entity.ValidateID(r.PathValue(name), entity.LocPath, name)
}
