package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirper/domain"
	"chirper/errs"
)

func TestLikeCreate_DuplicateSuppressed(t *testing.T) {
	db := testDB(t)
	ls := NewLikeService(db)
	author := seedUser(t, db, "author", "Author")
	liker := seedUser(t, db, "liker", "Liker")
	tweet := seedTweet(t, db, author, "hello")

	err := ls.Create(&domain.Like{TweetID: tweet.ID, UserID: liker.ID})
	require.NoError(t, err)

	// The second identical like must come back as a conflict, not a crash,
	// and must not add a row.
	err = ls.Create(&domain.Like{TweetID: tweet.ID, UserID: liker.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Like{}).
		Where("tweet_id = ? AND user_id = ?", tweet.ID, liker.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikeCreate_UnknownTweet(t *testing.T) {
	db := testDB(t)
	ls := NewLikeService(db)
	liker := seedUser(t, db, "liker", "Liker")

	err := ls.Create(&domain.Like{TweetID: 999, UserID: liker.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestLikeDelete_Idempotent(t *testing.T) {
	db := testDB(t)
	ls := NewLikeService(db)
	author := seedUser(t, db, "author", "Author")
	liker := seedUser(t, db, "liker", "Liker")
	tweet := seedTweet(t, db, author, "hello")

	// Unliking before liking is a safe no-op.
	err := ls.Delete(&domain.Like{TweetID: tweet.ID, UserID: liker.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	require.NoError(t, ls.Create(&domain.Like{TweetID: tweet.ID, UserID: liker.ID}))
	require.NoError(t, ls.Delete(&domain.Like{TweetID: tweet.ID, UserID: liker.ID}))

	// And unliking again after the first delete stays a no-op.
	err = ls.Delete(&domain.Like{TweetID: tweet.ID, UserID: liker.ID})
	require.Error(t, err)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestLikeCreate_DistinctPairsCoexist(t *testing.T) {
	db := testDB(t)
	ls := NewLikeService(db)
	author := seedUser(t, db, "author", "Author")
	one := seedUser(t, db, "one", "One")
	two := seedUser(t, db, "two", "Two")
	tweet := seedTweet(t, db, author, "hello")
	other := seedTweet(t, db, author, "world")

	require.NoError(t, ls.Create(&domain.Like{TweetID: tweet.ID, UserID: one.ID}))
	require.NoError(t, ls.Create(&domain.Like{TweetID: tweet.ID, UserID: two.ID}))
	require.NoError(t, ls.Create(&domain.Like{TweetID: other.ID, UserID: one.ID}))

	var count int64
	require.NoError(t, db.Model(&domain.Like{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
