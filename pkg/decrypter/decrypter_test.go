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

package decrypter_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/sops-decrypt/pkg/decrypter"
	"github.com/walteh/sops-decrypt/pkg/decrypter/decryptertest"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestToolDecrypt(t *testing.T) {
	ctx := testContext(t)
	decryptertest.InstallOnPath(t, "sops")

	dir := t.TempDir()
	src := filepath.Join(dir, "a.enc")
	dst := filepath.Join(dir, "a.out")
	writeFile(t, src, "secret: value\n")

	tool := decrypter.NewTool("sops")
	assert.Equal(t, "sops", tool.Name())

	err := tool.Decrypt(ctx, src, dst)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, decryptertest.Marker+"secret: value\n", string(got), "stdout should be redirected to the destination")

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "decrypted secrets should be private")
}

func TestToolDecryptByPath(t *testing.T) {
	ctx := testContext(t)
	tool := decryptertest.WriteFakeTool(t, t.TempDir(), "my-sops")

	dir := t.TempDir()
	src := filepath.Join(dir, "b.enc")
	dst := filepath.Join(dir, "b.out")
	writeFile(t, src, "b")
	writeFile(t, dst, "stale content that is longer than the new one")

	require.NoError(t, decrypter.NewTool(tool).Decrypt(ctx, src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, decryptertest.Marker+"b", string(got), "existing destination should be truncated")
}

func TestToolDecryptFailure(t *testing.T) {
	ctx := testContext(t)
	decryptertest.InstallOnPath(t, "sops")

	dir := t.TempDir()
	src := filepath.Join(dir, "will-fail.enc")
	dst := filepath.Join(dir, "will-fail.out")
	writeFile(t, src, "garbage")

	err := decrypter.NewTool("sops").Decrypt(ctx, src, dst)
	require.Error(t, err)

	var toolErr *decrypter.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 128, toolErr.ExitCode)
	assert.Contains(t, toolErr.Stderr, "no key could decrypt")
	assert.Contains(t, err.Error(), "sops -d "+src)
	assert.Contains(t, err.Error(), "exit status 128")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr, "should unwrap to the exec error")

	assert.NoFileExists(t, dst, "partial output should be removed")
}

func TestToolDecryptMissingTool(t *testing.T) {
	ctx := testContext(t)
	t.Setenv("PATH", t.TempDir())

	dir := t.TempDir()
	src := filepath.Join(dir, "a.enc")
	dst := filepath.Join(dir, "a.out")
	writeFile(t, src, "a")

	err := decrypter.NewTool("sops").Decrypt(ctx, src, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)

	var toolErr *decrypter.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, -1, toolErr.ExitCode)
	assert.NoFileExists(t, dst, "nothing should be written without a tool")
}

func TestToolDecryptMissingDestinationDir(t *testing.T) {
	ctx := testContext(t)
	decryptertest.InstallOnPath(t, "sops")

	dir := t.TempDir()
	src := filepath.Join(dir, "a.enc")
	writeFile(t, src, "a")

	err := decrypter.NewTool("sops").Decrypt(ctx, src, filepath.Join(dir, "missing", "a.enc"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "opening destination file")
	assert.NoDirExists(t, filepath.Join(dir, "missing"), "the destination directory is never created implicitly")
}

func TestToolDecryptCancelled(t *testing.T) {
	decryptertest.InstallOnPath(t, "sops")

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.enc")
	dst := filepath.Join(dir, "a.out")
	writeFile(t, src, "a")

	err := decrypter.NewTool("sops").Decrypt(ctx, src, dst)
	require.Error(t, err)
	assert.NoFileExists(t, dst)
}
