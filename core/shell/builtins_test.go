package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/josephlewis42/wish/core/config"
	"github.com/josephlewis42/wish/core/vos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllBuiltins(t *testing.T) {
	for _, name := range []string{"exit", "cd", "path"} {
		assert.Contains(t, AllBuiltins, name)
	}
	assert.Len(t, AllBuiltins, 3)
	assert.NotContains(t, AllBuiltins, "Exit", "names are case sensitive")
}

func TestCd(t *testing.T) {
	cases := map[string]struct {
		args    []string
		wantOut string
		wantDir string
		wantRet int
	}{
		"no args":     {[]string{"cd"}, MsgCdUsage, "/", 1},
		"two args":    {[]string{"cd", "/tmp", "/home"}, MsgCdUsage, "/", 1},
		"missing":     {[]string{"cd", "/nonexistent-dir"}, MsgChdir, "/", 1},
		"not a dir":   {[]string{"cd", "/tmp/file"}, MsgChdir, "/", 1},
		"absolute":    {[]string{"cd", "/tmp"}, "", "/tmp", 0},
		"relative":    {[]string{"cd", "tmp"}, "", "/tmp", 0},
		"parent of /": {[]string{"cd", ".."}, "", "/", 0},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			out := &bytes.Buffer{}
			tos := newTestOS(t, out)
			require.NoError(t, tos.WriteFile("/tmp/file", "", 0644))
			sh := NewShell(tos, NewBatchReader(strings.NewReader("")), config.Default())

			ret := Cd(sh, tos, tc.args)

			assert.Equal(t, tc.wantRet, ret)
			assert.Equal(t, tc.wantOut, out.String())
			wd, err := tos.Getwd()
			require.NoError(t, err)
			assert.Equal(t, tc.wantDir, wd)
		})
	}
}

func TestCd_writesToCommandStderr(t *testing.T) {
	sh, _, out := newBatchShell(t, "")
	cmdErr := &bytes.Buffer{}

	Cd(sh, vos.NewVIOAdapter(nil, nil, cmdErr), []string{"cd"})

	assert.Equal(t, MsgCdUsage, cmdErr.String())
	assert.Empty(t, out.String())
}

func TestPath(t *testing.T) {
	sh, tos, out := newBatchShell(t, "")

	assert.Equal(t, 0, Path(sh, tos, []string{"path", "/usr/bin", "bin", "/bin"}))
	assert.Equal(t, SearchPath{"/usr/bin", "bin", "/bin"}, sh.SearchPath)
	assert.Equal(t, "/usr/bin:bin:/bin", tos.Getenv(EnvPath))

	assert.Equal(t, 0, Path(sh, tos, []string{"path"}))
	assert.Empty(t, sh.SearchPath)
	assert.Equal(t, "", tos.Getenv(EnvPath))

	assert.Empty(t, out.String())
}

func TestExit(t *testing.T) {
	for _, args := range [][]string{{"exit"}, {"exit", "1", "2", "3"}} {
		sh, tos, out := newBatchShell(t, "")

		assert.Equal(t, 0, Exit(sh, tos, args))
		assert.True(t, sh.Quit)
		assert.Empty(t, out.String())
	}
}
