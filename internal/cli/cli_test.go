package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "snowstage-sync", root.Use)
	assert.Equal(t, "dev", root.Version)

	want := []string{"sync", "download", "package", "upload", "validate"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %q", name)
	}
}

func TestSyncCommandFlags(t *testing.T) {
	cmd := newSyncCommand()
	for _, name := range []string{
		"stage", "profile", "keep-artifacts",
		"requirements", "download-dir", "zip-name",
		"index-url", "platform", "python-version", "python",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestUploadCommandFlags(t *testing.T) {
	cmd := newUploadCommand()
	assert.NotNil(t, cmd.Flags().Lookup("stage"))
	assert.NotNil(t, cmd.Flags().Lookup("zip-name"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", errbuilder.New().WithCode(errbuilder.CodeInvalidArgument), 2},
		{"failed precondition", errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition), 3},
		{"not found", errbuilder.New().WithCode(errbuilder.CodeNotFound), 5},
		{"internal", errbuilder.New().WithCode(errbuilder.CodeInternal), 5},
		{"missing driver", errbuilder.New().WithCode(errbuilder.CodeUnimplemented), 6},
		{"plain error", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	coded := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("requirements file not found").
		WithCause(errors.New("stat requirements.txt: no such file"))
	assert.Equal(t, "requirements file not found", errorMessage(coded))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}

func TestResolveStringWithoutCommand(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("stage", "@FROM_VIPER")

	assert.Equal(t, "@EXPLICIT", resolveString(nil, "@EXPLICIT", "stage", "stage"))
	assert.Equal(t, "@FROM_VIPER", resolveString(nil, "", "stage", "stage"))
}

func TestResolveStringPrefersChangedFlag(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("stage", "@FROM_VIPER")

	cmd := newSyncCommand()
	require.NoError(t, cmd.Flags().Set("stage", "@FROM_FLAG"))
	assert.Equal(t, "@FROM_FLAG", resolveString(cmd, "@FROM_FLAG", "stage", "stage"))

	unchanged := newSyncCommand()
	assert.Equal(t, "@FROM_VIPER", resolveString(unchanged, "", "stage", "stage"))
}

func TestResolveBool(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("keep_artifacts", true)

	cmd := newSyncCommand()
	assert.True(t, resolveBool(cmd, false, "keep_artifacts", "keep-artifacts"))

	require.NoError(t, cmd.Flags().Set("keep-artifacts", "false"))
	assert.False(t, resolveBool(cmd, false, "keep_artifacts", "keep-artifacts"))
}
