package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/domain"
)

type form struct {
	FullName   string `validate:"required,notblank,max=5"`
	PhoneLast4 string `validate:"omitempty,len=4,numeric"`
	Gender     string `validate:"omitempty,oneof=male female"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, New().Struct(form{FullName: "山田", PhoneLast4: "1234", Gender: "male"}))
}

func TestStructCollectsFieldErrors(t *testing.T) {
	err := New().Struct(form{FullName: "   ", PhoneLast4: "12a4", Gender: "x"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "is required", fields["full_name"])
	assert.Equal(t, "must contain digits only", fields["phone_last4"])
	assert.Equal(t, "must be one of: male female", fields["gender"])
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "full_name_kana", snake("FullNameKana"))
	assert.Equal(t, "phone_last4", snake("PhoneLast4"))
	assert.Equal(t, "name", snake("Name"))
}

func TestRegisterReportsFailure(t *testing.T) {
	v := validator.New()
	err := register(v, map[string]validator.Func{"": func(validator.FieldLevel) bool { return true }})
	assert.Error(t, err)

	assert.NotPanics(t, func() { New() })
}
