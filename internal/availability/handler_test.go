package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVarietyIDs(t *testing.T) {
	tests := []struct {
		raw  string
		want []uint
	}{
		{"1,2,3", []uint{1, 2, 3}},
		{" 1 , 2 ", []uint{1, 2}},
		{"1,abc,3", []uint{1, 3}}, // sayı olmayanlar sessizce atlanır
		{"abc", []uint{}},
		{"", []uint{}},
		{",,", []uint{}},
		{"0,5", []uint{5}},
		{"-2,5", []uint{5}},
		{"5,5", []uint{5, 5}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseVarietyIDs(tt.raw), "raw=%q", tt.raw)
	}
}
