package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDate(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *string
	}{
		{"nil", nil, nil},
		{"empty", "", nil},
		{"spaces", "   ", nil},
		{"zero serial", 0, nil},
		{"serial int", 45306, strPtr("2024-01-15")},
		{"serial float", 45000.75, strPtr("2023-03-15")},
		{"serial string", "45306", strPtr("2024-01-15")},
		{"iso", "2024-01-15", strPtr("2024-01-15")},
		{"day first slash", "15/01/2024", strPtr("2024-01-15")},
		{"day first dash", "5-1-2024", strPtr("2024-01-05")},
		{"rfc3339", "2024-01-15T10:00:00Z", strPtr("2024-01-15")},
		{"month name", "15 Jan 2024", strPtr("2024-01-15")},
		{"time value", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), strPtr("2023-12-31")},
		{"passthrough", "minggu depan", strPtr("minggu depan")},
		{"out of range serial", "99999999", strPtr("99999999")},
		{"year text", "2024", strPtr("2024")},
		{"year number stays serial", 2024, strPtr("1905-07-16")},
		{"short serial text", "800", strPtr("1902-03-10")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceDate(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestCoerceDateNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		CoerceDate(struct{ X int }{1})
		CoerceDate([]byte("2024-01-01"))
		CoerceDate(-1)
	})
}
