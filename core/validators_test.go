package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Status Status   `json:"status" validate:"status"`
	Shift  Shift    `json:"shift" validate:"shift"`
	Days   []string `json:"days" validate:"dive,weekday"`
	Start  string   `json:"start" validate:"omitempty,hhmm"`
	Room   string   `json:"room" validate:"required"`
}

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	ok := slot{Status: StatusActive, Shift: ShiftAfternoon, Days: []string{"Terça"}, Start: "13:05", Room: "B2"}
	require.NoError(t, validate.Struct(ok))

	bad := slot{Status: "Ativa", Shift: "Noite", Days: []string{"Tuesday"}, Start: "1:05"}
	err := validate.Struct(bad)
	require.Error(t, err)

	msgs := make(map[string]string)
	for _, vErr := range err.(validator.ValidationErrors) {
		msgs[vErr.Field()] = vErr.Translate(translator)
	}
	assert.Equal(t, map[string]string{
		"status":  "status must be one of: Ativo, Inativo",
		"shift":   "shift must be one of: Manhã, Tarde",
		"days[0]": "days[0] must be a weekday name (Segunda ... Domingo)",
		"start":   "start must be a time of day formatted as HH:MM",
		"room":    "this field is required",
	}, msgs)
}

func TestIsTimeOfDay(t *testing.T) {
	for _, s := range []string{"00:00", "07:30", "19:59", "23:59"} {
		assert.True(t, IsTimeOfDay(s), s)
	}
	for _, s := range []string{"", "7:30", "24:00", "12:60", "12:5", "12-30"} {
		assert.False(t, IsTimeOfDay(s), s)
	}
}
