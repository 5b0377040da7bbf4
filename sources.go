// Copyright 2025 Naren Yellavula
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

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var errNoSources = errors.New("no key sources: pass key files, '-' for stdin, or enable source.history")

// KeyEntry is one key read from a source, with the time it was recorded
// when the source has one.
type KeyEntry struct {
	Key       string
	Timestamp *time.Time
	Origin    string
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// history files can hold very long one-liners
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// readZshHistory parses extended zsh history (": 1673291850:0;ls -la").
// Lines without the metadata prefix are taken as plain commands.
func readZshHistory(r io.Reader, origin string) ([]KeyEntry, error) {
	var history []KeyEntry

	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			if strings.TrimSpace(line) != "" {
				history = append(history, KeyEntry{Key: line, Origin: origin})
			}
			continue
		}

		// "", " 1673291850", "0;ls -la"
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			history = append(history, KeyEntry{Key: line, Origin: origin})
			continue
		}
		t := time.Unix(epoch, 0)

		// "0;ls -la": elapsed seconds, then the command
		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 || subParts[1] == "" {
			continue
		}
		history = append(history, KeyEntry{Key: subParts[1], Timestamp: &t, Origin: origin})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// readBashHistory parses ~/.bash_history. With HISTTIMEFORMAT set, a
// "#<epoch>" line carries the timestamp of the command that follows it.
func readBashHistory(r io.Reader, origin string) ([]KeyEntry, error) {
	var history []KeyEntry
	var lastTimestamp *time.Time

	scanner := newScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			epoch, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "#")), 10, 64)
			if err == nil {
				t := time.Unix(epoch, 0)
				lastTimestamp = &t
			} else {
				lastTimestamp = nil
			}
			continue
		}

		if strings.TrimSpace(line) != "" {
			history = append(history, KeyEntry{Key: line, Timestamp: lastTimestamp, Origin: origin})
		}
		// the timestamp belongs to one command only
		lastTimestamp = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// readLines takes every non-blank line as a key, trailing whitespace
// and a trailing carriage return removed.
func readLines(r io.Reader, origin string) ([]KeyEntry, error) {
	var keys []KeyEntry

	scanner := newScanner(r)
	for scanner.Scan() {
		key := strings.TrimRight(scanner.Text(), " \t\r")
		if key == "" {
			continue
		}
		keys = append(keys, KeyEntry{Key: key, Origin: origin})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// detectCurrentShell returns the base name of $SHELL, bash when unset.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok || currentShellPath == "" {
		return "bash"
	}
	return filepath.Base(currentShellPath)
}

func historyPath(shell string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch shell {
	case "zsh":
		return filepath.Join(homeDir, ".zsh_history"), nil
	case "bash":
		return filepath.Join(homeDir, ".bash_history"), nil
	default:
		return "", fmt.Errorf("unsupported shell %q: pass key files instead", shell)
	}
}

// readHistory loads the history file of shell.
func readHistory(shell string) ([]KeyEntry, error) {
	path, err := historyPath(shell)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if shell == "bash" {
				return nil, fmt.Errorf("bash history file not found. Run 'history -w' to create %s, then try again", path)
			}
			return nil, fmt.Errorf("zsh history file not found. Run some commands in zsh to create %s, then try again", path)
		}
		return nil, err
	}
	defer file.Close()

	if shell == "zsh" {
		return readZshHistory(file, path)
	}
	return readBashHistory(file, path)
}

// readKeyFile loads one key per line from path, or from stdin for "-".
func readKeyFile(path string, stdin io.Reader) ([]KeyEntry, error) {
	if path == "-" {
		return readLines(stdin, "stdin")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file %s: %w", path, err)
	}
	defer file.Close()

	keys, err := readLines(file, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}
	return keys, nil
}

// LoadKeys collects keys from files, or from shell history when no files
// are given and the configuration allows it. ctx is checked between
// sources.
func LoadKeys(ctx context.Context, config *Config, files []string, stdin io.Reader) ([]KeyEntry, error) {
	if len(files) == 0 {
		if !config.Source.History {
			return nil, errNoSources
		}
		shell := config.Source.Shell
		if shell == "" {
			shell = detectCurrentShell()
		}
		keys, err := readHistory(shell)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded shell history", "shell", shell, "keys", len(keys))
		return keys, nil
	}

	var keys []KeyEntry
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loaded, err := readKeyFile(path, stdin)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded key file", "path", path, "keys", len(loaded))
		keys = append(keys, loaded...)
	}
	return keys, nil
}
