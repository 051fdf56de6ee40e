package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostComment is a single customer comment on a business post.
type PostComment struct {
	CustID  string `bson:"cust_id" json:"cust_id"`
	Comment string `bson:"comment" json:"comment"`
}

// Post is a social-style business post stored in MongoDB. Flag 0 means
// visible; each flag bump hides it one step further.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BusinessID string             `bson:"business_id" json:"business_id"`
	Content    string             `bson:"content" json:"content"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Likes      int                `bson:"likes" json:"likes"`
	LikedBy    []string           `bson:"liked_by" json:"liked_by"`
	Comments   []PostComment      `bson:"comments" json:"comments"`
	Flag       int                `bson:"flag" json:"flag"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
