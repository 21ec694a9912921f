package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirper/domain"
	"chirper/errs"
)

func TestFollowCreate_DuplicateSuppressed(t *testing.T) {
	db := testDB(t)
	fs := NewFollowService(db)
	a := seedUser(t, db, "a", "A")
	b := seedUser(t, db, "b", "B")

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID}))

	err := fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowCreate_SelfFollowRejected(t *testing.T) {
	db := testDB(t)
	fs := NewFollowService(db)
	a := seedUser(t, db, "a", "A")

	err := fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: a.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowCreate_UnknownUser(t *testing.T) {
	db := testDB(t)
	fs := NewFollowService(db)
	a := seedUser(t, db, "a", "A")

	err := fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: 999})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollowDelete_Idempotent(t *testing.T) {
	db := testDB(t)
	fs := NewFollowService(db)
	a := seedUser(t, db, "a", "A")
	b := seedUser(t, db, "b", "B")

	err := fs.Delete(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID}))
	require.NoError(t, fs.Delete(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID}))

	err = fs.Delete(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollow_OppositeDirectionsAreDistinct(t *testing.T) {
	db := testDB(t)
	fs := NewFollowService(db)
	a := seedUser(t, db, "a", "A")
	b := seedUser(t, db, "b", "B")

	// A following B must not block B following A back.
	require.NoError(t, fs.Create(&domain.Follow{FollowerID: a.ID, FollowingID: b.ID}))
	require.NoError(t, fs.Create(&domain.Follow{FollowerID: b.ID, FollowingID: a.ID}))

	var count int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
