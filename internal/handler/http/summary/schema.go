package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"summarizer/internal/domain/entity"
)

// errBodyTooLarge is returned when the body exceeds the LimitRequestBody cap.
var errBodyTooLarge = errors.New("request body too large")

// CreatePayload is a validated create request.
type CreatePayload struct {
	URL string // canonical form
}

// UpdatePayload is a validated update request.
type UpdatePayload struct {
	URL     string // canonical form
	Summary string
}

// ParseCreatePayload decodes and validates a create request body.
// The error is a *entity.ValidationError for client mistakes.
func ParseCreatePayload(r *http.Request) (CreatePayload, error) {
	body, fe, err := decodeBody(r)
	if err != nil {
		return CreatePayload{}, err
	}
	ve := &entity.ValidationError{}
	if fe != nil {
		ve.Add(*fe)
		return CreatePayload{}, ve
	}
	out := validateCreate(body, ve)
	return out, ve.OrNil()
}

// ParseUpdatePayload decodes and validates an update request body.
// Field errors are appended to ve so that path errors recorded earlier keep
// their position. ve.OrNil reports whether anything failed.
func ParseUpdatePayload(r *http.Request, ve *entity.ValidationError) (UpdatePayload, error) {
	body, fe, err := decodeBody(r)
	if err != nil {
		return UpdatePayload{}, err
	}
	if fe != nil {
		ve.Add(*fe)
		return UpdatePayload{}, nil
	}
	return validateUpdate(body, ve), nil
}

func validateCreate(body any, ve *entity.ValidationError) CreatePayload {
	obj, ok := body.(map[string]any)
	if !ok {
		ve.Add(entity.NotAnObject(body))
		return CreatePayload{}
	}

	var out CreatePayload
	out.URL = requireURL(obj, ve)
	return out
}

func validateUpdate(body any, ve *entity.ValidationError) UpdatePayload {
	obj, ok := body.(map[string]any)
	if !ok {
		ve.Add(entity.NotAnObject(body))
		return UpdatePayload{}
	}

	var out UpdatePayload
	out.URL = requireURL(obj, ve)

	// url と summary は両方チェックしてからまとめて返す
	raw, present := obj["summary"]
	switch s, isString := raw.(string); {
	case !present:
		ve.Add(entity.MissingField(obj, entity.LocBody, "summary"))
	case !isString:
		ve.Add(entity.StringType(raw, entity.LocBody, "summary"))
	default:
		out.Summary = s
	}
	return out
}

func requireURL(obj map[string]any, ve *entity.ValidationError) string {
	raw, present := obj["url"]
	if !present {
		ve.Add(entity.MissingField(obj, entity.LocBody, "url"))
		return ""
	}
	canonical, fe := entity.NormalizeURL(raw, entity.LocBody, "url")
	if fe != nil {
		ve.Add(*fe)
		return ""
	}
	return canonical
}

// decodeBody reads the request body as generic JSON. Numbers are kept as
// json.Number so they are echoed back verbatim in field errors.
//
// A body problem the client can fix comes back as a FieldError:
// an empty body is "missing" at ["body"] and malformed JSON is "json_invalid"
// at ["body", offset]. I/O failures come back as err.
func decodeBody(r *http.Request) (any, *entity.FieldError, error) {
	if r.Body == nil {
		return nil, bodyMissing(), nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, errBodyTooLarge
		}
		return nil, nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, bodyMissing(), nil
	}

	// 構文チェック（オフセット取得のため）
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, jsonInvalid(err, len(data)), nil
	}

	var body any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, jsonInvalid(err, len(data)), nil
	}
	return body, nil, nil
}

func bodyMissing() *entity.FieldError {
	fe := entity.MissingField(nil, entity.LocBody)
	return &fe
}

func jsonInvalid(err error, size int) *entity.FieldError {
	offset := int64(size)
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	return &entity.FieldError{
		Type:  entity.ErrTypeJSONInvalid,
		Loc:   []any{entity.LocBody, offset},
		Msg:   "JSON decode error",
		Input: map[string]any{},
		Ctx:   map[string]any{"error": err.Error()},
	}
}
