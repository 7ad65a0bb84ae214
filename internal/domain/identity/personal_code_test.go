package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePersonalCode(t *testing.T) {
	t.Run("decodes birth date and gender", func(t *testing.T) {
		code, err := ParsePersonalCode("49002010965")
		require.NoError(t, err)
		assert.Equal(t, time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC), code.BirthDate)
		assert.Equal(t, GenderFemale, code.Gender)
	})

	t.Run("decodes 2000s male", func(t *testing.T) {
		code, err := ParsePersonalCode("50810190221")
		require.NoError(t, err)
		assert.Equal(t, 2008, code.BirthDate.Year())
		assert.Equal(t, GenderMale, code.Gender)
	})

	t.Run("accepts leap day", func(t *testing.T) {
		code, err := ParsePersonalCode("60002290221")
		require.NoError(t, err)
		assert.Equal(t, time.February, code.BirthDate.Month())
		assert.Equal(t, 29, code.BirthDate.Day())
	})

	t.Run("accepts checksum computed with second weights", func(t *testing.T) {
		_, err := ParsePersonalCode("38001085004")
		assert.NoError(t, err)
	})

	invalid := map[string]string{
		"too short":          "4900201096",
		"too long":           "490020109650",
		"non digit":          "4900201096a",
		"century digit zero": "00000000000",
		"century digit 7":    "79002010965",
		"february 30":        "50002300229",
		"month 13":           "39913010226",
		"checksum mismatch":  "49002010964",
		"empty":              "",
	}
	for name, code := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := ParsePersonalCode(code)
			assert.Error(t, err)
		})
	}
}

func TestPersonalCodeAge(t *testing.T) {
	code, err := ParsePersonalCode("50810190221")
	require.NoError(t, err)

	assert.Equal(t, 17, code.Age(time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, code.Age(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, code.Age(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
