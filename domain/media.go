package domain

// MaxUploadSize determines the maximum filesize of a media upload.
const MaxUploadSize int64 = 5 << 20 // 5 Megabyte

// Media is an opaque binary blob keyed by id. It is uploaded before the tweet
// that references it exists; TweetID stays NULL until a tweet is created with
// this media's id, and is cleared again if that tweet is deleted. The bytes
// are stored and served verbatim, no transcoding.
type Media struct {
	ID          int    `json:"id"`
	File        []byte `json:"-" gorm:"notNull"`
	ContentType string `json:"-" gorm:"size:100"`
	TweetID     *int   `json:"tweet_id"`
}

// MediaService is a set of methods to manipulate and work with the Media model.
type MediaService interface {
	Create(media *Media) error
	ByID(id int) (*Media, error)
}
