package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcnksm/go-latest"
)

func stubLatest(t *testing.T, res *latest.CheckResponse, err error) {
	t.Helper()
	orig := checkLatest
	checkLatest = func(string) (*latest.CheckResponse, error) { return res, err }
	t.Cleanup(func() { checkLatest = orig })
}

func TestVersionCmd(t *testing.T) {
	stubLatest(t, nil, errors.New("must not be called"))

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pathsnap version "+Version+"\n", out)
}

func TestVersionCmd_Check(t *testing.T) {
	tests := []struct {
		name string
		res  *latest.CheckResponse
		err  error
		want string
	}{
		{"outdated", &latest.CheckResponse{Outdated: true, Current: "9.0.0"}, nil, "A new version is available: 9.0.0 (you have " + Version + ")"},
		{"latest", &latest.CheckResponse{Current: Version}, nil, "You are using the latest version: " + Version},
		{"offline", nil, errors.New("dial tcp: no route"), "Unable to check for updates: dial tcp: no route"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLatest(t, tt.res, tt.err)

			out, err := execute(t, "version", "--check")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want+"\n")
		})
	}
}
