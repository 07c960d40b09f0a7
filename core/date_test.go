package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetNowFunc(t *testing.T) {
	fixed := time.Date(2024, 9, 16, 23, 59, 0, 0, time.Local)
	restore := SetNowFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, Now())
	assert.Equal(t, "2024-09-16", Today())

	restore()
	assert.WithinDuration(t, time.Now(), Now(), time.Minute)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-09-02", want: "2024-09-02"},
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-9-2", wantErr: true},
		{in: "02/09/2024", wantErr: true},
		{in: "2024-09-02T08:00:00Z", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.Local, got.Location())
		})
	}
}

func TestIsWeekend(t *testing.T) {
	monday := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC)
	want := []bool{false, false, false, false, false, true, true}
	for i, w := range want {
		d := monday.AddDate(0, 0, i)
		assert.Equal(t, w, IsWeekend(d), d.Weekday().String())
	}
}
