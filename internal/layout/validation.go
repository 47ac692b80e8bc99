package layout

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		validateInst = v
	})

	return validateInst
}

func validateDeviceContext(ctx DeviceContext) error {
	if err := validatorInstance().Struct(ctx); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			fe := ves[0]
			return podiumerrors.NewInvalidDeviceContextError(fieldPath(fe), fe.Value(), describeTag(fe))
		}
		return podiumerrors.NewInvalidDeviceContextError("", nil, err.Error())
	}

	finite := []struct {
		field string
		value float64
	}{
		{"viewport_width", ctx.ViewportWidth},
		{"viewport_height", ctx.ViewportHeight},
		{"safe_area.top", ctx.SafeArea.Top},
		{"safe_area.bottom", ctx.SafeArea.Bottom},
		{"safe_area.left", ctx.SafeArea.Left},
		{"safe_area.right", ctx.SafeArea.Right},
	}
	for _, f := range finite {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return podiumerrors.NewInvalidDeviceContextError(f.field, f.value, "must be a finite number")
		}
	}

	return nil
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
