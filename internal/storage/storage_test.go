package storage

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dollar(n int) string { return "$" + strconv.Itoa(n) }

func question(int) string { return "?" }

func TestFilterSQL(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	var first time.Time

	testCases := []struct {
		name      string
		filter    Filter
		bind      func(int) string
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "Empty filter",
			filter:    Filter{},
			bind:      dollar,
			wantWhere: "TRUE",
			wantArgs:  nil,
		},
		{
			name:      "Owner only",
			filter:    Filter{OwnerID: 3},
			bind:      dollar,
			wantWhere: "user_id = $1",
			wantArgs:  []any{int64(3)},
		},
		{
			name:      "Range with exclusion",
			filter:    Filter{From: &from, To: &to, ExcludeID: 9},
			bind:      dollar,
			wantWhere: "end_date >= $1 AND start_date <= $2 AND id <> $3",
			wantArgs:  []any{"2025-08-01", "2025-08-31", int64(9)},
		},
		{
			name:      "All conditions with question marks",
			filter:    Filter{OwnerID: 1, From: &from, To: &to, ExcludeID: 2},
			bind:      question,
			wantWhere: "user_id = ? AND end_date >= ? AND start_date <= ? AND id <> ?",
			wantArgs:  []any{int64(1), "2025-08-01", "2025-08-31", int64(2)},
		},
		{
			name:      "Open ended from",
			filter:    Filter{From: &from},
			bind:      dollar,
			wantWhere: "end_date >= $1",
			wantArgs:  []any{"2025-08-01"},
		},
		{
			name:      "Zero time is still a bound",
			filter:    Filter{To: &first},
			bind:      question,
			wantWhere: "start_date <= ?",
			wantArgs:  []any{"0001-01-01"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			where, args := tc.filter.SQL(tc.bind)

			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
