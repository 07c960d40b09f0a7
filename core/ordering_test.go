package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderings(t *testing.T) {
	tests := []struct {
		in   string
		want []Ordering
	}{
		{in: "", want: nil},
		{in: "name", want: []Ordering{{Field: "name", Ascending: true}}},
		{in: "-id", want: []Ordering{{Field: "id"}}},
		{in: "name, -id", want: []Ordering{{Field: "name", Ascending: true}, {Field: "id"}}},
		{in: ",-,name,", want: []Ordering{{Field: "name", Ascending: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrderings(tt.in))
		})
	}
}
