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

// Package file reads and writes log files, treating "-" as the standard
// streams.
package file

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Stdio is the path that selects stdin for reading and stdout for writing
const Stdio = "-"

// ErrNoPath is returned when an empty path is given
var ErrNoPath = errors.Base("no path specified")

// 📖 Read loads a whole log. The "-" path reads from stdin.
func Read(ctx context.Context, path string, stdin io.Reader) (string, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		return "", errors.WithStack(ErrNoPath)
	}

	if path == Stdio {
		logger.Debug().Msg("reading log from stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	logger.Debug().Str("path", path).Msg("reading log")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

// 💾 Write stores content at path. The "-" path writes to stdout. Files are
// replaced atomically and keep the mode of the file they replace.
func Write(ctx context.Context, path string, content string, stdout io.Writer) error {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		return errors.WithStack(ErrNoPath)
	}

	if path == Stdio {
		logger.Debug().Int("bytes", len(content)).Msg("writing log to stdout")
		if _, err := io.WriteString(stdout, content); err != nil {
			return errors.Errorf("writing stdout: %w", err)
		}
		return nil
	}

	logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("writing log")
	return writeAtomic(path, []byte(content))
}

func writeAtomic(path string, content []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
