package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name        string
		goos        string
		goarch      string
		wantArchive string
		wantBinary  string
		wantErr     bool
	}{
		{"darwin amd64", "darwin", "amd64", "compass_Darwin_all.tar.gz", "compass", false},
		{"darwin arm64", "darwin", "arm64", "compass_Darwin_all.tar.gz", "compass", false},
		{"linux amd64", "linux", "amd64", "compass_Linux_x86_64.tar.gz", "compass", false},
		{"linux arm64", "linux", "arm64", "compass_Linux_arm64.tar.gz", "compass", false},
		{"linux 386", "linux", "386", "compass_Linux_i386.tar.gz", "compass", false},
		{"windows amd64", "windows", "amd64", "compass_Windows_x86_64.zip", "compass.exe", false},
		{"unsupported os", "freebsd", "amd64", "", "", true},
		{"unsupported arch", "linux", "mips", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArchive, got.archive)
			assert.Equal(t, tt.wantBinary, got.binary)
		})
	}
}

func TestReadChecksumManifest(t *testing.T) {
	input := "abc123  compass_Darwin_all.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  compass_Linux_x86_64.tar.gz\n"
	got := readChecksumManifest([]byte(input))
	assert.Equal(t, map[string]string{
		"compass_Darwin_all.tar.gz":   "abc123",
		"compass_Linux_x86_64.tar.gz": "def456",
	}, got)

	assert.Empty(t, readChecksumManifest(nil))
}

func TestCheckSHA256(t *testing.T) {
	data := []byte("release archive bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, checkSHA256(data, hex.EncodeToString(sum[:])))

	err := checkSHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpackBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho compass")
	asset := releaseAsset{archive: "compass_Darwin_all.tar.gz", binary: "compass"}

	t.Run("tar.gz", func(t *testing.T) {
		got, err := unpackBinary(buildTarGz(t, "compass", content), asset)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := unpackBinary(buildTarGz(t, "README.md", content), asset)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "compass")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	require.NoError(t, swapBinary(replacement, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-compass-binary")
	archive := buildTarGz(t, "compass", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])
	platformAsset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	asset := platformAsset.archive

	releaseServer := func(t *testing.T, checksums string) *httptest.Server {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/careercompass/compass/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case fmt.Sprintf("/careercompass/compass/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case "/careercompass/compass/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "compass")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, fmt.Sprintf("%s  %s\n", archiveHex, asset))
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := "0000000000000000000000000000000000000000000000000000000000000000"
		server := releaseServer(t, fmt.Sprintf("%s  %s\n", bad, asset))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/careercompass/compass/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
