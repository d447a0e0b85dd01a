package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.coll.InsertOne(ctx, userDoc{
		Name:      u.Name,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt.UTC(),
	})
	return mapDuplicate(err)
}

func (r *usersRepo) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		return domain.User{}, mapNoDocuments(err)
	}
	return doc.domain(), nil
}
