package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneValidity(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  PhoneCheck
	}{
		{"grammar-valid E.164", "+1 650-253-0000", PhoneGrammarValid},
		{"unparseable but plausible digits", "123456789012", PhoneHeuristicValid},
		{"too short", "12345", PhoneInvalid},
		{"too long", "12345678901234567890", PhoneInvalid},
		{"empty", "", PhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneValidity(tt.phone))
		})
	}
}

func TestPhoneValidity_FictionalNumberFallsBack(t *testing.T) {
	// 555 numbers are not grammar-valid, but the digit-count fallback
	// still accepts them; extraction must not lose them.
	assert.NotEqual(t, PhoneInvalid, PhoneValidity("+1-555-123-4567"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+15551234567", NormalizePhone("+1 (555) 123-4567"))
	assert.Equal(t, "15551234567", NormalizePhone("1 (555) 123-4567"))
	assert.Equal(t, "+15551234567", NormalizePhone("  +1.555.123.4567  "))
}
