package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int64
		wantOK bool
	}{
		{"Int", 42, 42, true},
		{"Int64", int64(1700000000000), 1700000000000, true},
		{"Uint64", uint64(7), 7, true},
		{"Float", 12.0, 12, true},
		{"String", "1700000000000", 1700000000000, true},
		{"PaddedString", " 5 ", 5, true},
		{"Bytes", []byte("9"), 9, true},
		{"BadString", "soon", 0, false},
		{"Nil", nil, 0, false},
		{"Bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "bob", ToString("bob"))
	assert.Equal(t, "bob", ToString([]byte("bob")))
	assert.Equal(t, "123", ToString(123))
}
