package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

type tasksRepo struct {
	coll *mongo.Collection
}

func byIDAndOwner(id, owner string) bson.M {
	return bson.M{"id": id, "user": owner}
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.coll.InsertOne(ctx, toTaskDoc(t))
	return mapDuplicate(err)
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user": owner}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]domain.Task, 0)
	for cur.Next(ctx) {
		var doc taskDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.domain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkTaskCompleted only updates open tasks; a task that is already done
// (or missing) falls through to a plain lookup.
func (r *tasksRepo) MarkTaskCompleted(ctx context.Context, id, owner string, at time.Time) (domain.Task, error) {
	filter := byIDAndOwner(id, owner)
	filter["completed"] = bson.M{"$ne": true}
	update := bson.M{"$set": bson.M{"completed": true, "updated_at": at.UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.domain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, err
	}

	if err := r.coll.FindOne(ctx, byIDAndOwner(id, owner)).Decode(&doc); err != nil {
		return domain.Task{}, mapNoDocuments(err)
	}
	return doc.domain(), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, owner string) error {
	res, err := r.coll.DeleteOne(ctx, byIDAndOwner(id, owner))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
