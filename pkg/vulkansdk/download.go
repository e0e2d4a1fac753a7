// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vulkansdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// ErrInstallerExists is returned when the installer was already downloaded
var ErrInstallerExists = errors.Base("installer already downloaded")

// chunkSize is the copy buffer used while streaming the installer
const chunkSize = 8192

// 🚫 StatusError is returned when the download endpoint does not answer 200
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// 📊 Progress receives streaming updates; total is -1 when unknown
type Progress interface {
	Start(total int64)
	Add(n int)
	Stop()
}

// 🔧 DownloadOptions configures Download
type DownloadOptions struct {
	Client   *http.Client // defaults to http.DefaultClient
	Progress Progress     // optional
}

// 🔍 DownloadFile starts a GET request and returns the body with its declared length
func DownloadFile(ctx context.Context, client *http.Client, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, errors.Errorf("downloading file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, errors.WithStack(&StatusError{URL: url, StatusCode: resp.StatusCode})
	}

	return resp.Body, resp.ContentLength, nil
}

// 📥 Download streams the installer for layout to layout.InstallerPath.
// A partially written installer is removed when the transfer fails.
func Download(ctx context.Context, fs afero.Fs, layout *Layout, opts DownloadOptions) error {
	logger := zerolog.Ctx(ctx)

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	exists, err := afero.Exists(fs, layout.InstallerPath)
	if err != nil {
		return errors.Errorf("checking installer: %w", err)
	}
	if exists {
		return errors.WithStack(ErrInstallerExists)
	}

	logger.Info().Str("url", layout.DownloadURL).Msg("downloading vulkan sdk")

	body, size, err := DownloadFile(ctx, client, layout.DownloadURL)
	if err != nil {
		return errors.Errorf("downloading %s: %w", layout.DownloadURL, err)
	}
	defer body.Close()

	if err := fs.MkdirAll(path.Dir(layout.InstallerPath), 0755); err != nil {
		return errors.Errorf("creating installer directory: %w", err)
	}

	file, err := fs.Create(layout.InstallerPath)
	if err != nil {
		return errors.Errorf("creating installer file: %w", err)
	}

	progress.Start(size)
	written, copyErr := io.CopyBuffer(file, io.TeeReader(body, progressWriter{progress}), make([]byte, chunkSize))
	progress.Stop()
	closeErr := file.Close()

	if copyErr == nil && closeErr != nil {
		copyErr = closeErr
	}
	if copyErr == nil && size >= 0 && written != size {
		copyErr = errors.Errorf("short download: got %d of %d bytes", written, size)
	}
	if copyErr != nil {
		if err := fs.Remove(layout.InstallerPath); err != nil {
			logger.Warn().Err(err).Str("path", layout.InstallerPath).Msg("removing partial installer")
		}
		return errors.Errorf("writing installer: %w", copyErr)
	}

	logger.Info().Str("path", layout.InstallerPath).Int64("bytes", written).Msg("vulkan sdk downloaded")
	return nil
}

type progressWriter struct {
	p Progress
}

func (w progressWriter) Write(b []byte) (int, error) {
	w.p.Add(len(b))
	return len(b), nil
}

type nopProgress struct{}

func (nopProgress) Start(int64) {}
func (nopProgress) Add(int)     {}
func (nopProgress) Stop()       {}
