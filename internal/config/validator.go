package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/podium/internal/layout"
	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	deviceIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		// Report fields by their YAML keys so errors point at the catalogue text.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("device_id", func(fl validator.FieldLevel) bool {
			return deviceIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := layout.ParsePlatform(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the catalogue.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return podiumerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Devices))
	for i, device := range cfg.Devices {
		if first, exists := seen[device.ID]; exists {
			return podiumerrors.NewValidationError(fieldForDevice(i, "id"),
				fmt.Sprintf("duplicate device id %q (first defined at devices[%d])", device.ID, first), nil)
		}
		seen[device.ID] = i

		if err := device.Context().Validate(); err != nil {
			field := fieldForDevice(i, "")
			var ctxErr *podiumerrors.InvalidDeviceContextError
			if errors.As(err, &ctxErr) {
				field = fieldForDevice(i, catalogueKey(ctxErr.Field))
			}
			return podiumerrors.NewValidationError(field, fmt.Sprintf("device %q: %v", device.ID, err), err)
		}
	}

	if err := cfg.Tuning.Tuning().Validate(); err != nil {
		return err
	}

	return nil
}
