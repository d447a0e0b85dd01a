package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

// DefaultDatabase is used when the connection string names no database.
const DefaultDatabase = "taskboard"

const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// New connects to the deployment named by uri ("mongodb://" or
// "mongodb+srv://"). The database is taken from the URI path.
func New(ctx context.Context, uri string) (*Store, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("mongo: parse uri: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return NewWithClient(client, cs.Database), nil
}

// NewWithClient wraps an existing client (for testing).
func NewWithClient(client *mongo.Client, database string) *Store {
	if database == "" {
		database = DefaultDatabase
	}
	return &Store{
		client: client,
		db:     client.Database(database),
	}
}

func (s *Store) Users() store.Users { return &usersRepo{coll: s.db.Collection(usersCollection)} }
func (s *Store) Tasks() store.Tasks { return &tasksRepo{coll: s.db.Collection(tasksCollection)} }

// ApplyMigrations ensures the indexes the repositories depend on. Unique
// indexes back ErrAlreadyExists.
func (s *Store) ApplyMigrations() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_name_unique"),
	})
	if err != nil {
		return fmt.Errorf("mongo: users index: %w", err)
	}

	_, err = s.db.Collection(tasksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("tasks_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetName("tasks_user_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: tasks indexes: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}
