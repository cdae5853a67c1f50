package app

import (
	"context"
	"os"
	"path/filepath"

	"snowstage-sync/internal/ports"
	"snowstage-sync/internal/types"
)

type fakeDownloader struct {
	files []string
	err   error
	calls int
	got   types.DownloadOptions
}

func (f *fakeDownloader) Download(_ context.Context, opts types.DownloadOptions) error {
	f.calls++
	f.got = opts
	if f.err != nil {
		return f.err
	}
	if err := os.RemoveAll(opts.TargetDir); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
		return err
	}
	for _, name := range f.files {
		if err := os.WriteFile(filepath.Join(opts.TargetDir, name), []byte(name), 0644); err != nil {
			return err
		}
	}
	return nil
}

type fakeArchiver struct {
	count     int
	err       error
	calls     int
	gotSource string
	gotOutput string
}

func (f *fakeArchiver) Archive(sourceDir string, outputPath string) (int, error) {
	f.calls++
	f.gotSource = sourceDir
	f.gotOutput = outputPath
	if f.err != nil {
		return 0, f.err
	}
	if err := os.WriteFile(outputPath, []byte("zip"), 0644); err != nil {
		return 0, err
	}
	return f.count, nil
}

type fakeCredentialSource struct {
	creds types.Credentials
}

func (f fakeCredentialSource) Load() types.Credentials {
	return f.creds
}

type fakeStageConn struct {
	rows     []types.TransferRow
	execErr  error
	commands []string
	closes   int
}

func (c *fakeStageConn) Execute(_ context.Context, command string) ([]types.TransferRow, error) {
	c.commands = append(c.commands, command)
	if c.execErr != nil {
		return nil, c.execErr
	}
	return c.rows, nil
}

func (c *fakeStageConn) Close() error {
	c.closes++
	return nil
}

type fakeStageConnector struct {
	availableErr error
	connectErr   error
	conn         *fakeStageConn
	connects     int
	gotCreds     types.Credentials
}

func (f *fakeStageConnector) Available() error {
	return f.availableErr
}

func (f *fakeStageConnector) Connect(_ context.Context, creds types.Credentials) (ports.StageConn, error) {
	f.connects++
	f.gotCreds = creds
	if f.connectErr != nil {
		return nil, f.connectErr
	}
	return f.conn, nil
}

func uploadedConn() *fakeStageConn {
	return &fakeStageConn{rows: []types.TransferRow{
		{Source: "app_packages.zip", Target: "app_packages.zip", Status: "UPLOADED"},
	}}
}

func validCreds() types.Credentials {
	return types.Credentials{
		Account:   "acct",
		User:      "user",
		Password:  "secret",
		Role:      "SYSADMIN",
		Warehouse: "COMPUTE_WH",
		Database:  "ANALYTICS",
		Schema:    "PUBLIC",
	}
}
