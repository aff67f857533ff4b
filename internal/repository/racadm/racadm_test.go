package racadm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	name string
	args []string
	out  string
	err  error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, arg ...string) ([]byte, error) {
	f.name = name
	f.args = arg

	return []byte(f.out), f.err
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		out         string
		execErr     error
		expectedErr error
	}{
		{name: "success", out: "[Key=BIOS.Setup.1-1]\nSecureBoot=Enabled\n"},
		{name: "exec failure", execErr: errors.New("exit status 2"), expectedErr: ErrCommandFailed},
		{name: "error in output", out: "ERROR: Unable to connect", expectedErr: ErrCommandFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exec := &fakeExecutor{out: tc.out, err: tc.execErr}
			tool := New("/opt/dell/racadm", exec)

			out, err := tool.RunCommand(context.Background(), "10.0.0.1", "root", "calvin", "get bios.SysSecurity.SecureBoot")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.out, out)
			assert.Equal(t, "/opt/dell/racadm", exec.name)
			assert.Equal(t, []string{"-r", "10.0.0.1", "-u", "root", "-p", "calvin", "get", "bios.SysSecurity.SecureBoot"}, exec.args)
		})
	}
}
