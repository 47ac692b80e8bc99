package layout

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

const (
	DefaultReferenceWidth  = 375.0
	DefaultPhoneFontFloor  = 0.85
	DefaultTabletFontBoost = 1.1
)

// Tuning holds the font normalization constants.
// PhoneFontFloor above 1 would break the floor guarantee and a TabletFontBoost
// below 1 would let fonts shrink when crossing into the tablet breakpoint.
// ReferenceWidth is at least one logical pixel so width/ReferenceWidth stays finite.
type Tuning struct {
	ReferenceWidth  float64 `json:"reference_width" yaml:"reference_width" validate:"gte=1"`
	PhoneFontFloor  float64 `json:"phone_font_floor" yaml:"phone_font_floor" validate:"gt=0,lte=1"`
	TabletFontBoost float64 `json:"tablet_font_boost" yaml:"tablet_font_boost" validate:"gte=1"`
}

// DefaultTuning returns the constants the mobile client ships with.
func DefaultTuning() Tuning {
	return Tuning{
		ReferenceWidth:  DefaultReferenceWidth,
		PhoneFontFloor:  DefaultPhoneFontFloor,
		TabletFontBoost: DefaultTabletFontBoost,
	}
}

// Validate checks the tuning bounds.
func (t Tuning) Validate() error {
	if err := validatorInstance().Struct(t); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			fe := ves[0]
			field := "tuning." + fieldPath(fe)
			return podiumerrors.NewValidationError(field, fmt.Sprintf("%v %s", fe.Value(), describeTag(fe)), err)
		}
		return podiumerrors.NewValidationError("tuning", err.Error(), err)
	}

	finite := []struct {
		field string
		value float64
	}{
		{"tuning.reference_width", t.ReferenceWidth},
		{"tuning.phone_font_floor", t.PhoneFontFloor},
		{"tuning.tablet_font_boost", t.TabletFontBoost},
	}
	for _, f := range finite {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return podiumerrors.NewValidationError(f.field, fmt.Sprintf("%v must be a finite number", f.value), nil)
		}
	}
	return nil
}
