package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/models"
)

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection("likes")}
}

// Remove deletes the like fact for (post, user) if one exists and reports
// whether a fact was removed. DeleteOne keeps the delete-if-present branch
// atomic against a concurrent toggle by the same user.
func (r *LikeRepository) Remove(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Add inserts a like fact for (post, user). The unique (post_id, user_id)
// index turns a racing double-insert into a duplicate key error, which is
// treated as already-liked.
func (r *LikeRepository) Add(ctx context.Context, postID primitive.ObjectID, userID string) error {
	_, err := r.col.InsertOne(ctx, models.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// CountByPost returns the number of like facts for a post.
func (r *LikeRepository) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"post_id": postID})
}

// CountByPosts returns like counts for a batch of posts in one aggregation.
// Posts without likes are absent from the result map.
func (r *LikeRepository) CountByPosts(ctx context.Context, postIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := map[primitive.ObjectID]int64{}
	if len(postIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"post_id": bson.M{"$in": postIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$post_id", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		PostID primitive.ObjectID `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

// ListLikedPostIDs returns which of the given posts the user currently likes.
func (r *LikeRepository) ListLikedPostIDs(ctx context.Context, userID string, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	liked := map[primitive.ObjectID]bool{}
	if len(postIDs) == 0 {
		return liked, nil
	}

	cur, err := r.col.Find(ctx, bson.M{
		"user_id": userID,
		"post_id": bson.M{"$in": postIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var facts []models.Like
	if err := cur.All(ctx, &facts); err != nil {
		return nil, err
	}
	for _, f := range facts {
		liked[f.PostID] = true
	}
	return liked, nil
}

// RemoveAllByPost deletes every like fact of a post. Called when the post
// itself is deleted so no orphaned facts remain.
func (r *LikeRepository) RemoveAllByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
