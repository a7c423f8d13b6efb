package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvVars(t *testing.T) {
	lookup := mapLookup(map[string]string{
		"SystemRoot":  `C:\WINDOWS`,
		"USERPROFILE": `C:\Users\me`,
	})

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{`C:\Tools`, `C:\Tools`},
		{`%SystemRoot%\system32`, `C:\WINDOWS\system32`},
		{`%USERPROFILE%\bin;%SystemRoot%`, `C:\Users\me\bin;C:\WINDOWS`},
		{`%NOPE%\bin`, `%NOPE%\bin`},
		{`%NOPE%\x%SystemRoot%`, `%NOPE%\xC:\WINDOWS`},
		{`100%`, `100%`},
		{`%%`, `%%`},
		{`%SystemRoot%%USERPROFILE%`, `C:\WINDOWSC:\Users\me`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandEnvVars(tt.in, lookup))
		})
	}
}

func TestProcessEnv_IgnoresCase(t *testing.T) {
	t.Setenv("PATHSNAP_TEST_VAR", `D:\data`)

	v, ok := ProcessEnv("pathsnap_test_var")
	assert.True(t, ok)
	assert.Equal(t, `D:\data`, v)

	_, ok = ProcessEnv("PATHSNAP_TEST_UNSET_VAR")
	assert.False(t, ok)

	assert.Equal(t, `D:\data\bin`, ExpandEnvVars(`%PATHSNAP_TEST_VAR%\bin`, nil))
}
