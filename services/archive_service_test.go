package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalArchiveServiceRoundTrip(t *testing.T) {
	archive, err := NewLocalArchiveService(t.TempDir())
	require.NoError(t, err)

	key := "events/lineitems/2026/08/26/test.json"
	payload := []byte(`{"actionGroup":"requisitions"}`)

	err = archive.SaveEvent(context.Background(), key, payload)
	assert.NoError(t, err)

	stored, err := archive.GetEvent(context.Background(), key)
	assert.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestLocalArchiveServiceGetMissingKey(t *testing.T) {
	archive, err := NewLocalArchiveService(t.TempDir())
	require.NoError(t, err)

	_, err = archive.GetEvent(context.Background(), "events/lineitems/nope.json")
	assert.Error(t, err)
}

func TestNewArchiveServiceUnknownType(t *testing.T) {
	_, err := NewArchiveService("ftp", "/tmp")
	assert.EqualError(t, err, "unknown archive type: ftp")
}

func TestGenerateEventKey(t *testing.T) {
	ts := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	key := GenerateEventKey(ts)
	assert.True(t, strings.HasPrefix(key, "events/lineitems/2026/08/26/"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	// Keys for the same timestamp must not collide
	assert.NotEqual(t, key, GenerateEventKey(ts))
}
