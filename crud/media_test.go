package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirper/domain"
	"chirper/errs"
)

func TestMediaRoundTrip(t *testing.T) {
	db := testDB(t)
	ms := NewMediaService(db)

	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, 0x01}
	media := domain.Media{File: payload}
	require.NoError(t, ms.Create(&media))
	require.NotZero(t, media.ID)
	assert.Nil(t, media.TweetID)

	stored, err := ms.ByID(media.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, stored.File)
}

func TestMediaCreate_EmptyPayload(t *testing.T) {
	db := testDB(t)
	ms := NewMediaService(db)

	err := ms.Create(&domain.Media{})
	require.Error(t, err)
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestMediaCreate_SniffsContentType(t *testing.T) {
	db := testDB(t)
	ms := NewMediaService(db)

	media := domain.Media{File: []byte("plain words")}
	require.NoError(t, ms.Create(&media))
	assert.Contains(t, media.ContentType, "text/plain")

	// A declared content type wins over sniffing.
	declared := domain.Media{File: []byte("plain words"), ContentType: "image/png"}
	require.NoError(t, ms.Create(&declared))
	assert.Equal(t, "image/png", declared.ContentType)
}

func TestMediaByID_Unknown(t *testing.T) {
	db := testDB(t)
	ms := NewMediaService(db)

	_, err := ms.ByID(999)
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}
