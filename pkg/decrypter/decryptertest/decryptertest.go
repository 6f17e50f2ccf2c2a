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

// Package decryptertest provides a stand-in for the sops executable.
package decryptertest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Marker is written in front of the "decrypted" content by the fake tool.
const Marker = "decrypted:"

// fakeTool behaves like `sops -d <file>`: it prints the file behind Marker,
// and fails with exit code 128 for any file whose name contains "fail".
const fakeTool = `#!/bin/sh
if [ "$1" != "-d" ]; then
	echo "usage: $0 -d <file>" >&2
	exit 2
fi
case "$(basename "$2")" in
*fail*)
	echo "Error decrypting key: no key could decrypt $2" >&2
	exit 128
	;;
esac
printf '%s' "` + Marker + `"
exec cat "$2"
`

// 🛠️ WriteFakeTool writes an executable named name into dir and returns its path.
// Tests using it are skipped on Windows.
func WriteFakeTool(t testing.TB, dir, name string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake decryption tool is a shell script")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(fakeTool), 0o755); err != nil {
		t.Fatalf("writing fake tool: %v", err)
	}
	return path
}

// 🛤️ InstallOnPath writes the fake tool as name into a fresh directory and
// puts that directory first on PATH for the duration of the test.
func InstallOnPath(t *testing.T, name string) string {
	t.Helper()

	dir := t.TempDir()
	path := WriteFakeTool(t, dir, name)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}
