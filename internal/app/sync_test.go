package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowstage-sync/internal/adapters"
)

type syncFixture struct {
	downloader *fakeDownloader
	archiver   *fakeArchiver
	conn       *fakeStageConn
	connector  *fakeStageConnector
	service    Service
}

// newSyncFixture moves the test into an empty working directory with a
// requirements.txt in place, so the pipeline's relative defaults resolve
// inside the sandbox.
func newSyncFixture(t *testing.T, wheels []string) *syncFixture {
	t.Helper()
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("requirements.txt", []byte("numpy==1.24.4\n"), 0644))

	conn := uploadedConn()
	f := &syncFixture{
		downloader: &fakeDownloader{files: wheels},
		archiver:   &fakeArchiver{count: len(wheels)},
		conn:       conn,
		connector:  &fakeStageConnector{conn: conn},
	}
	f.service = Service{
		Downloader:  f.downloader,
		Archiver:    f.archiver,
		Stage:       f.connector,
		Profiles:    adapters.NewProfileFileAdapter(),
		Credentials: fakeCredentialSource{creds: validCreds()},
		Clock:       time.Now,
	}
	return f
}

func TestSyncPipeline(t *testing.T) {
	f := newSyncFixture(t, []string{"numpy-1.24.4-cp38-none-any.whl", "pandas-1.5.3-cp38-none-any.whl"})

	result, err := f.service.Sync(t.Context(), SyncRequest{Stage: "@ANALYTICS.PUBLIC.PACKAGES"})
	require.NoError(t, err)
	assert.Equal(t, "@ANALYTICS.PUBLIC.PACKAGES", result.Stage)
	assert.Equal(t, 2, result.FileCount)

	abs, err := filepath.Abs(DefaultZipName)
	require.NoError(t, err)
	want := []string{fmt.Sprintf("PUT file://%s @ANALYTICS.PUBLIC.PACKAGES AUTO_COMPRESS=FALSE OVERWRITE=TRUE", abs)}
	if diff := cmp.Diff(want, f.conn.commands); diff != "" {
		t.Fatalf("unexpected transfer commands (-want +got):\n%s", diff)
	}

	assert.NoDirExists(t, DefaultDownloadDir, "download directory survived cleanup")
	assert.NoFileExists(t, DefaultZipName, "archive survived cleanup")
}

func TestSyncDownloadFailureAborts(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.downloader.err = errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("pip download failed").
		WithCause(errors.New("exit status 1"))

	_, err := f.service.Sync(t.Context(), SyncRequest{Stage: "@DB.SCHEMA.STAGE"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Equal(t, 0, f.archiver.calls, "archiver ran after failed download")
	assert.Equal(t, 0, f.connector.connects, "upload attempted after failed download")
}

func TestSyncEmptyDownloadAborts(t *testing.T) {
	f := newSyncFixture(t, nil)

	_, err := f.service.Sync(t.Context(), SyncRequest{Stage: "@DB.SCHEMA.STAGE"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Equal(t, 0, f.connector.connects)
}

func TestSyncKeepArtifacts(t *testing.T) {
	f := newSyncFixture(t, []string{"requests-2.31.0-py3-none-any.whl"})

	_, err := f.service.Sync(t.Context(), SyncRequest{
		Stage:         "@DB.SCHEMA.STAGE",
		KeepArtifacts: true,
	})
	require.NoError(t, err)
	assert.DirExists(t, DefaultDownloadDir)
	assert.FileExists(t, DefaultZipName)
}

func TestSyncAppliesProfile(t *testing.T) {
	f := newSyncFixture(t, []string{"numpy-1.24.4-cp38-none-any.whl"})

	profile := `kind: sync-profile
metadata:
  name: analytics-udfs
stage: "@ANALYTICS.PUBLIC.PACKAGES"
zip_name: analytics_packages.zip
index_url: https://packages.example.com/pypi/internal/simple
`
	require.NoError(t, os.WriteFile("profile.yaml", []byte(profile), 0644))

	result, err := f.service.Sync(t.Context(), SyncRequest{Profile: "profile.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "@ANALYTICS.PUBLIC.PACKAGES", result.Stage)
	assert.Equal(t, "analytics_packages.zip", filepath.Base(result.ArchivePath))
	assert.Equal(t, "https://packages.example.com/pypi/internal/simple", f.downloader.got.IndexURL)
}

func TestSyncExplicitValuesBeatProfile(t *testing.T) {
	f := newSyncFixture(t, []string{"numpy-1.24.4-cp38-none-any.whl"})

	profile := `kind: sync-profile
metadata:
  name: analytics-udfs
stage: "@ANALYTICS.PUBLIC.PACKAGES"
platform: manylinux_2_28_x86_64
`
	require.NoError(t, os.WriteFile("profile.yaml", []byte(profile), 0644))

	result, err := f.service.Sync(t.Context(), SyncRequest{
		Profile:  "profile.yaml",
		Stage:    "@STAGING.PUBLIC.PACKAGES",
		Platform: "manylinux2014_aarch64",
	})
	require.NoError(t, err)
	assert.Equal(t, "@STAGING.PUBLIC.PACKAGES", result.Stage)
	assert.Equal(t, "manylinux2014_aarch64", f.downloader.got.Platform)
}

func TestSyncMissingProfile(t *testing.T) {
	f := newSyncFixture(t, nil)

	_, err := f.service.Sync(t.Context(), SyncRequest{Profile: "absent.yaml"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Equal(t, 0, f.downloader.calls)
}
