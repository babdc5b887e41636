package models

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`
}

// PostTag is the post/tag association row. No surrogate key; the pair is
// the identity and must not repeat.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
