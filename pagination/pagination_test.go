package pagination_test

import (
	"testing"

	"github.com/andyle182810/cinemadash/pagination"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	negative, two, huge := -3, 2, 1000

	tests := []struct {
		name          string
		skip, limit   *int
		expectedSkip  int
		expectedLimit int
	}{
		{name: "absent", skip: nil, limit: nil, expectedSkip: 0, expectedLimit: 0},
		{name: "negative skip", skip: &negative, limit: &two, expectedSkip: 0, expectedLimit: 2},
		{name: "large limit kept", skip: &two, limit: &huge, expectedSkip: 2, expectedLimit: 1000},
		{name: "non-positive limit", skip: nil, limit: &negative, expectedSkip: 0, expectedLimit: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			skip, limit := pagination.Window(test.skip, test.limit)

			require.Equal(t, test.expectedSkip, skip)
			require.Equal(t, test.expectedLimit, limit)
		})
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, pagination.Page(0, 50))
	require.Equal(t, 1, pagination.Page(49, 50))
	require.Equal(t, 3, pagination.Page(100, 50))
	require.Equal(t, 1, pagination.Page(10, 0))
}
