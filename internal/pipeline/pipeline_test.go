package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/label-intake/constants"
	"github.com/joseph-ayodele/label-intake/internal/async"
	"github.com/joseph-ayodele/label-intake/internal/common"
	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/vision"
)

const twoLabels = `[
  {
    "carrier": "UPS",
    "trackingNumber": "1Z999AA10123456784",
    "recipientName": "ATTN: DAVID KIM",
    "recipientAddress": "123 Main St Suite 5, New York, NY 10001",
    "pmbNumber": "5",
    "confidence": 0.94
  },
  {"recipientName": "John Doe", "confidence": 0.5}
]`

func TestRunner_Run(t *testing.T) {
	r := NewRunner(nil, nil, nil, 0)
	b, err := r.Run(context.Background(), "inline", []byte(twoLabels), vision.FormatJSON, true)
	require.NoError(t, err)

	assert.NotEmpty(t, b.BatchID)
	assert.Equal(t, "inline", b.Source)
	assert.Equal(t, 2, b.Count)
	assert.Equal(t, 1, b.NeedsReview)
	require.Len(t, b.Items, 2)

	first := b.Items[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, constants.ReviewOK, first.Review)
	assert.Equal(t, "PMB-0005", first.Result.PMBNumber)
	assert.Equal(t, constants.ServicePMBCustomer, first.Result.ServiceType)
	assert.Len(t, first.Report, 7)

	assert.Equal(t, constants.ReviewNeedsReview, b.Items[1].Review)
	assert.Len(t, b.Results(), 2)
	assert.InDelta(t, 0.6, r.MinConfidence(), 1e-9)
}

func TestRunner_RunDecodeError(t *testing.T) {
	_, err := NewRunner(nil, nil, nil, 0.6).Run(context.Background(), "bad", []byte("not json"), vision.FormatJSON, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRunner_RunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	require.NoError(t, os.WriteFile(path, []byte(twoLabels), 0o644))

	b, fr, err := NewRunner(nil, nil, nil, 0.6).RunFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, "json", fr.Ext)
	assert.Equal(t, fr.Path, b.Source)
	assert.Nil(t, b.Items[0].Report)
}

func TestFileSink_Handle(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "results")
	path := filepath.Join(in, "scan.json")
	require.NoError(t, os.WriteFile(path, []byte(twoLabels), 0o644))

	sink, err := NewFileSink(NewRunner(nil, nil, nil, 0.6), out, export.FormatYAML, nil)
	require.NoError(t, err)

	require.NoError(t, sink.Handle(context.Background(), async.NewJob(path)))

	resultPath := ResultPath(out, path, export.FormatYAML)
	assert.Equal(t, "scan.result.yaml", filepath.Base(resultPath))
	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)

	var got Batch
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "PMB-0005", got.Items[0].Result.PMBNumber)

	// same content again is skipped unless forced
	require.NoError(t, os.Remove(resultPath))
	require.NoError(t, sink.Handle(context.Background(), async.NewJob(path)))
	assert.NoFileExists(t, resultPath)

	job := async.NewJob(path)
	job.Force = true
	require.NoError(t, sink.Handle(context.Background(), job))
	assert.FileExists(t, resultPath)
}

func TestFileSink_IgnoresOwnOutput(t *testing.T) {
	sink, err := NewFileSink(NewRunner(nil, nil, nil, 0.6), t.TempDir(), export.FormatJSON, nil)
	require.NoError(t, err)
	assert.NoError(t, sink.Handle(context.Background(), async.NewJob("/nowhere/scan.result.json")))
	assert.True(t, IsResultFile("a/b/scan.result.yaml"))
	assert.False(t, IsResultFile("a/b/scan.yaml"))
}

func TestNewFileSink_RejectsXLSX(t *testing.T) {
	_, err := NewFileSink(NewRunner(nil, nil, nil, 0.6), t.TempDir(), export.FormatXLSX, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
