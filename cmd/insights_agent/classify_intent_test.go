package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntentCommand_NoInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "classify-intent")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no keywords")
}

func TestClassifyIntentCommand_Arguments(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "classify-intent",
		"buy winter tires", "how to rotate tires", "treadco login")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	out := string(output)
	assert.Contains(t, out, "transactional")
	assert.Contains(t, out, "informational")
	assert.Contains(t, out, "navigational")
}

func TestClassifyIntentCommand_RankedFile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	rankedPath := writeTestFile(t, tmpDir, "ranked.json", testRankedJSON)

	cmd := exec.Command(binaryPath, "classify-intent", "--ranked", rankedPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "winter tires")
}
