package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/YusovID/defect-tracker/internal/apperrors"
	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

const maxBodyBytes = 1 << 20

type idParam struct {
	ID int64 `validate:"required,gt=0"`
}

type listDefectsParams struct {
	Search   *string `validate:"omitempty,max=255"`
	Status   *string `validate:"omitempty,defect_status"`
	Severity *string `validate:"omitempty,defect_severity"`
	Priority *int    `validate:"omitempty,min=1,max=5"`
}

func (p listDefectsParams) filter() domain.DefectFilter {
	var f domain.DefectFilter

	if p.Search != nil {
		f.Search = *p.Search
	}

	if p.Status != nil {
		f.Status = domain.Status(*p.Status)
	}

	if p.Severity != nil {
		f.Severity = domain.Severity(*p.Severity)
	}

	if p.Priority != nil {
		f.Priority = *p.Priority
	}

	return f
}

// pathID binds and validates the {id} segment of the route.
func pathID(r *http.Request) (int64, error) {
	var p idParam

	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, chi.URLParam(r, "id"), &p.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	if err := validation.ValidateStruct(p); err != nil {
		return 0, err
	}

	return p.ID, nil
}

func bindListDefectsParams(r *http.Request) (listDefectsParams, error) {
	var p listDefectsParams

	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"search", &p.Search},
		{"status", &p.Status},
		{"severity", &p.Severity},
		{"priority", &p.Priority},
	}

	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return listDefectsParams{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
		}
	}

	// "?status=" means no status filter
	for _, s := range []**string{&p.Search, &p.Status, &p.Severity} {
		if *s != nil && **s == "" {
			*s = nil
		}
	}

	if err := validation.ValidateStruct(p); err != nil {
		return listDefectsParams{}, err
	}

	return p, nil
}

// decodeBag reads a JSON object body. Numbers stay json.Number so that the
// domain layer can tell integral values from fractional ones.
func decodeBag(r *http.Request) (domain.Bag, error) {
	defer r.Body.Close()

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	if len(data) > maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", apperrors.ErrInvalidRequest, maxBodyBytes)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: request body is required", apperrors.ErrInvalidRequest)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var b domain.Bag
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	if b == nil {
		return nil, fmt.Errorf("%w: request body must be a JSON object", apperrors.ErrInvalidRequest)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the JSON object", apperrors.ErrInvalidRequest)
	}

	return b, nil
}
