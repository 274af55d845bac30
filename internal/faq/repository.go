package faq

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, id string, patch Patch, at time.Time) (Entry, error)
	IncrementViewCount(ctx context.Context, id string, at time.Time) (Entry, error)
	Delete(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, q Query) ([]Entry, error)
	Count(ctx context.Context, q Query) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Entry) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Get(ctx context.Context, id string) (Entry, error) {
	var item Entry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return Entry{}, err
	}
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch Patch, at time.Time) (Entry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": setDocument(patch, at)}

	var updated Entry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Entry{}, err
	}
	return updated, nil
}

func (r *MongoRepository) IncrementViewCount(ctx context.Context, id string, at time.Time) (Entry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"viewCount": 1},
		"$set": bson.M{"updatedAt": at},
	}

	var updated Entry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Entry{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (Entry, error) {
	var deleted Entry
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return Entry{}, err
	}
	return deleted, nil
}

func (r *MongoRepository) List(ctx context.Context, q Query) ([]Entry, error) {
	opts := options.Find().
		SetSort(listSort()).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)

	cursor, err := r.col.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Entry, 0)
	for cursor.Next(ctx) {
		var item Entry
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, q Query) (int64, error) {
	return r.col.CountDocuments(ctx, buildFilter(q))
}

func (r *MongoRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	cursor, err := r.col.Aggregate(ctx, categoryPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make([]CategoryCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func categoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isActive": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// buildFilter expects a normalized query: Search and Category are never both set.
func buildFilter(q Query) bson.M {
	filter := bson.M{"isActive": true}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"question": pattern},
			bson.M{"answer": pattern},
			bson.M{"tags": pattern},
		}
		return filter
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

// _id breaks createdAt ties so repeated calls page identically.
func listSort() bson.D {
	return bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	}
}

func setDocument(p Patch, at time.Time) bson.M {
	set := bson.M{"updatedAt": at}
	if v, ok := p.Question.Get(); ok {
		set["question"] = v
	}
	if v, ok := p.Answer.Get(); ok {
		set["answer"] = v
	}
	if v, ok := p.Category.Get(); ok {
		set["category"] = v
	}
	if v, ok := p.Tags.Get(); ok {
		set["tags"] = v
	}
	if v, ok := p.Order.Get(); ok {
		set["order"] = v
	}
	if v, ok := p.IsActive.Get(); ok {
		set["isActive"] = v
	}
	return set
}
