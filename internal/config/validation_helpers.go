package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

// convertValidationError turns the first validator failure into a
// ValidationError keyed by its catalogue path, e.g. "devices[2].width".
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := catalogueField(fe)
		return podiumerrors.NewValidationError(field, fmt.Sprintf("%s %s", field, describeRule(fe)), err)
	}

	return podiumerrors.NewValidationError("catalogue", err.Error(), err)
}

// catalogueField drops the root struct name from the YAML-keyed namespace.
func catalogueField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// catalogueKey maps a device context field onto the preset's YAML keys.
func catalogueKey(field string) string {
	switch field {
	case "viewport_width":
		return "width"
	case "viewport_height":
		return "height"
	default:
		return field
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "semver":
		return fmt.Sprintf("must be a semver version such as \"1.0\", got %q", fe.Value())
	case "device_id":
		return fmt.Sprintf("must use lowercase letters, digits and underscores, got %q", fe.Value())
	case "platform":
		return fmt.Sprintf("must be ios or android, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func fieldForDevice(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("devices[%d]", index)
	}
	return fmt.Sprintf("devices[%d].%s", index, field)
}
