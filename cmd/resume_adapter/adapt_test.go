package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-adapter/internal/config"
	"github.com/jonathan/resume-adapter/internal/pipeline"
)

const testResume = `Jane Doe
jane.doe@example.com

Experience
Acme Corp — Senior Engineer (2021-03 – Present)
- Built the payments API

Skills
Languages: Go, SQL`

// clearProviderEnv forces the deterministic structuring path.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExecuteAdapt_ToStdout(t *testing.T) {
	clearProviderEnv(t)

	cfg := config.Config{
		Resume: writeTempFile(t, "resume.txt", testResume),
	}

	var buf bytes.Buffer
	err := executeAdapt(context.Background(), cfg, &buf)
	require.NoError(t, err)

	var resp pipeline.AdaptResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Resume.Header.FullName)
	assert.NotEmpty(t, resp.RequestID)
}

func TestExecuteAdapt_ToFile(t *testing.T) {
	clearProviderEnv(t)

	outPath := filepath.Join(t.TempDir(), "adapted.json")
	cfg := config.Config{
		Resume: writeTempFile(t, "resume.txt", testResume),
		Output: outPath,
	}

	var buf bytes.Buffer
	err := executeAdapt(context.Background(), cfg, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Adapted resume written to")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var resp pipeline.AdaptResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "Jane Doe", resp.Resume.Header.FullName)
}

func TestExecuteAdapt_VerboseOutput(t *testing.T) {
	clearProviderEnv(t)

	cfg := config.Config{
		Resume:  writeTempFile(t, "resume.txt", testResume),
		Job:     writeTempFile(t, "job.txt", "We need a Go engineer."),
		Verbose: true,
	}

	var buf bytes.Buffer
	err := executeAdapt(context.Background(), cfg, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ADAPTED RESUME")
	assert.Contains(t, output, "COST")
	// No chat provider is configured, so the rewrite is skipped with a warning.
	assert.Contains(t, output, "WARNINGS")
}

func TestExecuteAdapt_MissingResumeFile(t *testing.T) {
	clearProviderEnv(t)

	cfg := config.Config{Resume: "/nonexistent/resume.txt"}

	var buf bytes.Buffer
	err := executeAdapt(context.Background(), cfg, &buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}
