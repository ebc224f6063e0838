// Package impl contains the implementation of the application's business logic.
package impl

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/usecase/patch"

	"github.com/go-playground/validator/v10"
)

// patchValuer lets the validator see through patch.Field wrappers: a carried
// value is validated against the field's tags, absent and null unwrap to a
// typed nil pointer and are skipped via omitnil. omitempty would also skip a
// carried "" and let it bypass min/enum constraints.
type patchValuer interface {
	PatchValue() any
}

// newValidate builds the validator shared by the mutation and query
// registries. Enum checks delegate to the canonical entity vocabularies so
// the set of legal values has a single source of truth.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterCustomTypeFunc(unwrapPatchField,
		patch.Field[string]{},
		patch.Field[int]{},
		patch.Field[time.Time]{},
		patch.Field[[]string]{},
		patch.Field[entity.IdeaStatus]{},
		patch.Field[entity.ArtifactType]{},
		patch.Field[entity.ArtifactStatus]{},
	)

	mustRegister(v, "idea_status", func(fl validator.FieldLevel) bool {
		return entity.IdeaStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "artifact_type", func(fl validator.FieldLevel) bool {
		return entity.ArtifactType(fl.Field().String()).Valid()
	})
	mustRegister(v, "artifact_status", func(fl validator.FieldLevel) bool {
		return entity.ArtifactStatus(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func unwrapPatchField(field reflect.Value) any {
	if f, ok := field.Interface().(patchValuer); ok {
		return f.PatchValue()
	}

	return nil
}

// decodeArgs unmarshals raw mutation/query arguments into the operation's
// input schema and applies its constraints. It runs before any database
// access; a failure carries the offending field and constraint.
func decodeArgs[T any](v *validator.Validate, raw json.RawMessage) (*T, error) {
	input := new(T)

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, input); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("malformed arguments: " + err.Error())
		}
	}

	if err := v.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(describeViolations(err))
	}

	return input, nil
}

// describeViolations flattens validator errors into "field: constraint" form.
func describeViolations(err error) string {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: violates %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: violates %s", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}

	*target = verrs

	return true
}

// requireNotNull rejects explicit nulls on fields whose columns are NOT NULL.
func requireNotNull(fields map[string]interface{ IsNull() bool }) error {
	for name, f := range fields {
		if f.IsNull() {
			return domainerrors.ErrValidationFailed.WithDetails(name + ": must not be null")
		}
	}

	return nil
}
