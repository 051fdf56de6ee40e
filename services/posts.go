package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sklyit/models"
	"sklyit/storage"
)

// PostsService manages social-style business posts in MongoDB.
type PostsService struct {
	posts *mongo.Collection
	blob  storage.BlobStore
	log   zerolog.Logger
}

func NewPostsService(posts *mongo.Collection, blob storage.BlobStore, log zerolog.Logger) *PostsService {
	return &PostsService{posts: posts, blob: blob, log: log}
}

// CreatePost stores a new post, uploading the optional image first.
func (s *PostsService) CreatePost(ctx context.Context, businessID string, req models.CreatePostRequest, imageName string, imageData []byte) (*models.Post, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	imageURL := ""
	if len(imageData) > 0 {
		if s.blob == nil {
			return nil, models.Upstream("image uploads are not configured", nil)
		}
		url, err := s.blob.Upload(ctx, imageName, imageData)
		if err != nil {
			s.log.Error().Err(err).Msg("post image upload failed")
			return nil, models.Upstream("failed to upload image", err)
		}
		imageURL = url
	}

	post := models.Post{
		ID:         primitive.NewObjectID(),
		BusinessID: businessID,
		Content:    req.Content,
		Image:      imageURL,
		LikedBy:    []string{},
		Comments:   []models.PostComment{},
		CreatedAt:  time.Now(),
	}
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to create post")
		return nil, models.Upstream("failed to create post", err)
	}
	return &post, nil
}

// GetAllPosts lists the posts of a business, optionally only the visible
// (flag 0) ones.
func (s *PostsService) GetAllPosts(ctx context.Context, businessID string, visibleOnly bool) ([]models.Post, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	filter := bson.M{"business_id": businessID}
	if visibleOnly {
		filter["flag"] = 0
	}
	cursor, err := s.posts.Find(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to list posts")
		return nil, models.Upstream("failed to list posts", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, models.Upstream("failed to read posts", err)
	}
	return posts, nil
}

// GetPostByID fetches one post of a business.
func (s *PostsService) GetPostByID(ctx context.Context, businessID, id string) (*models.Post, error) {
	if businessID == "" || id == "" {
		return nil, models.MissingField("business id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOne(ctx, bson.M{"_id": oid, "business_id": businessID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch post", err)
	}
	return &post, nil
}

// UpdatePost replaces the content of a post.
func (s *PostsService) UpdatePost(ctx context.Context, businessID, id string, req models.CreatePostRequest) (*models.Post, error) {
	if businessID == "" || id == "" {
		return nil, models.MissingField("business id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "business_id": businessID},
		bson.M{"$set": bson.M{"content": req.Content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to update post", err)
	}
	return &post, nil
}

// FlagPost bumps the visibility flag of a post.
func (s *PostsService) FlagPost(ctx context.Context, businessID, id string) error {
	if businessID == "" || id == "" {
		return models.MissingField("business id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NotFound("post")
	}
	res := s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "business_id": businessID},
		bson.M{"$inc": bson.M{"flag": 1}})
	if res.Err() == mongo.ErrNoDocuments {
		return models.NotFound("post")
	}
	if res.Err() != nil {
		return models.Upstream("failed to flag post", res.Err())
	}
	return nil
}

// LikePost records a like by a customer.
func (s *PostsService) LikePost(ctx context.Context, custID, id string) (*models.Post, error) {
	if custID == "" || id == "" {
		return nil, models.MissingField("customer id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likes": 1}, "$addToSet": bson.M{"liked_by": custID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to like post", err)
	}
	return &post, nil
}

// UnlikePost removes a like by a customer.
func (s *PostsService) UnlikePost(ctx context.Context, custID, id string) (*models.Post, error) {
	if custID == "" || id == "" {
		return nil, models.MissingField("customer id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likes": -1}, "$pull": bson.M{"liked_by": custID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to unlike post", err)
	}
	return &post, nil
}

// CommentPost appends a customer comment.
func (s *PostsService) CommentPost(ctx context.Context, custID, id, comment string) (*models.Post, error) {
	if custID == "" || id == "" {
		return nil, models.MissingField("customer id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"comments": models.PostComment{CustID: custID, Comment: comment}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to comment on post", err)
	}
	return &post, nil
}

// UncommentPost removes every comment of a customer from a post.
func (s *PostsService) UncommentPost(ctx context.Context, custID, id string) (*models.Post, error) {
	if custID == "" || id == "" {
		return nil, models.MissingField("customer id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NotFound("post")
	}
	var post models.Post
	err = s.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"comments": bson.M{"cust_id": custID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.NotFound("post")
	}
	if err != nil {
		return nil, models.Upstream("failed to remove comment", err)
	}
	return &post, nil
}

// DeletePost removes one post of a business.
func (s *PostsService) DeletePost(ctx context.Context, businessID, id string) error {
	if businessID == "" || id == "" {
		return models.MissingField("business id and post id")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NotFound("post")
	}
	res, err := s.posts.DeleteOne(ctx, bson.M{"_id": oid, "business_id": businessID})
	if err != nil {
		return models.Upstream("failed to delete post", err)
	}
	if res.DeletedCount == 0 {
		return models.NotFound("post")
	}
	return nil
}
