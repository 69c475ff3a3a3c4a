package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain digits", input: "0701234567", want: "0701234567"},
		{name: "dashes and spaces", input: "070-123 45 67", want: "0701234567"},
		{name: "international prefix", input: "+46 70 123 45 67", want: "46701234567"},
		{name: "empty", input: "", want: ""},
		{name: "no digits at all", input: "abc-def", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestPhoneEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical", a: "0701234567", b: "0701234567", want: true},
		{name: "formatting differs", a: "070-123 45 67", b: "0701234567", want: true},
		{name: "different numbers", a: "0701234567", b: "0707654321", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneEqual(tt.a, tt.b))
		})
	}
}
