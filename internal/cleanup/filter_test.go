package cleanup

import (
	"testing"
	"time"

	"github.com/aatumaykin/agesweep/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		days int
		want bool
	}{
		{name: "60d23h with threshold 60", age: 60*day + 23*time.Hour, days: 60, want: true},
		{name: "exactly 60d", age: 60 * day, days: 60, want: false},
		{name: "one nanosecond over", age: 60*day + 1, days: 60, want: true},
		{name: "young file", age: 24 * time.Hour, days: 60, want: false},
		{name: "zero days, any positive age", age: time.Second, days: 0, want: true},
		{name: "zero days, same instant", age: 0, days: 0, want: false},
		{name: "modified in the future", age: -time.Hour, days: 0, want: false},
		{name: "threshold beyond duration range", age: time.Hour, days: 200000, want: false},
		{name: "largest threshold, young file", age: 365 * day, days: constants.MaxDays, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(now.Add(-tt.age), now, tt.days))
		})
	}
}

func TestExcluder_Defaults(t *testing.T) {
	ex, err := NewExcluder(constants.DefaultExcludePatterns())
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"._.DS_Store", true},
		{"Icon\r", true},
		{"Icon", false},
		{"MyIcon\r", false},
		{"Thumbs.db", true},
		{"a.txt", false},
		{"DS_Store.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ex.Excluded(tt.name))
		})
	}
}

func TestExcluder_Unanchored(t *testing.T) {
	ex, err := NewExcluder([]string{`keep`})
	require.NoError(t, err)

	assert.True(t, ex.Excluded("please-keep-me.txt"))
	assert.False(t, ex.Excluded("discard.txt"))
}

func TestExcluder_NormalizesNames(t *testing.T) {
	ex, err := NewExcluder([]string{"^caf\u00e9\\.txt$"})
	require.NoError(t, err)

	assert.True(t, ex.Excluded("cafe\u0301.txt"), "decomposed name matches precomposed pattern")
}

func TestExcluder_InvalidPattern(t *testing.T) {
	_, err := NewExcluder([]string{"(unclosed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExcluder_Empty(t *testing.T) {
	ex, err := NewExcluder(nil)
	require.NoError(t, err)
	assert.False(t, ex.Excluded(".DS_Store"))
}

func TestProtector(t *testing.T) {
	p := NewProtector([]string{"*/projects/*", "/srv/keep"})

	assert.True(t, p.Protected("/home/me/projects/report.pdf"))
	assert.True(t, p.Protected("/srv/keep"))
	assert.False(t, p.Protected("/srv/keep2"))
	assert.False(t, p.Protected("/home/me/Downloads/report.pdf"))
	assert.False(t, NewProtector(nil).Protected("/anything"))
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "valid", opts: Options{Days: 60, Roots: []string{"/tmp"}}},
		{name: "zero days", opts: Options{Days: 0, Roots: []string{"/tmp"}}},
		{name: "negative days", opts: Options{Days: -1, Roots: []string{"/tmp"}}, wantErr: true},
		{name: "relative root", opts: Options{Days: 1, Roots: []string{"tmp"}}, wantErr: true},
		{name: "largest days", opts: Options{Days: constants.MaxDays, Roots: []string{"/tmp"}}},
		{name: "days beyond duration range", opts: Options{Days: 200000, Roots: []string{"/tmp"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}
