package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

type usersRepo struct {
	client *redis.Client
	keys   keys
}

// CreateUser relies on SETNX so concurrent registrations of one name cannot
// both succeed.
func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(userDoc{
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	})
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, r.keys.user(u.Name), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *usersRepo) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	data, err := r.client.Get(ctx, r.keys.user(name)).Bytes()
	if err != nil {
		return domain.User{}, mapNil(err)
	}

	var doc userDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		Name:         doc.Name,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
