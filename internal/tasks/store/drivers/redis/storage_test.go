package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/storetest"
)

func newMiniStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})

	s := NewWithClient(client, DefaultConfig())
	t.Cleanup(func() { _ = s.Close() })
	return s, mini
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, _ := newMiniStore(t)
		require.NoError(t, s.ApplyMigrations())
		return s
	})
}

type StorageSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.store, s.mini = newMiniStore(s.T())
	s.ctx = context.Background()
}

func (s *StorageSuite) TestKeyLayout() {
	now := time.Now()
	s.Require().NoError(s.store.Users().CreateUser(s.ctx, domain.User{Name: "alice", PasswordHash: "h", CreatedAt: now}))
	s.Require().NoError(s.store.Tasks().CreateTask(s.ctx, domain.Task{ID: "01A", Title: "t", Owner: "alice", CreatedAt: now, UpdatedAt: now}))

	s.True(s.mini.Exists("taskboard:user:alice"))
	s.True(s.mini.Exists("taskboard:task:01A"))

	members, err := s.mini.ZMembers("taskboard:idx:owner_tasks:alice")
	s.Require().NoError(err)
	s.Equal([]string{"01A"}, members)
}

func (s *StorageSuite) TestDeleteRemovesIndexEntry() {
	now := time.Now()
	s.Require().NoError(s.store.Tasks().CreateTask(s.ctx, domain.Task{ID: "01A", Title: "t", Owner: "alice", CreatedAt: now, UpdatedAt: now}))
	s.Require().NoError(s.store.Tasks().DeleteTask(s.ctx, "01A", "alice"))

	s.False(s.mini.Exists("taskboard:task:01A"))
	members, _ := s.mini.ZMembers("taskboard:idx:owner_tasks:alice")
	s.Empty(members)
}

func (s *StorageSuite) TestListSkipsDanglingIndexEntries() {
	now := time.Now()
	s.Require().NoError(s.store.Tasks().CreateTask(s.ctx, domain.Task{ID: "01A", Title: "kept", Owner: "alice", CreatedAt: now, UpdatedAt: now}))
	_, err := s.mini.ZAdd("taskboard:idx:owner_tasks:alice", 0, "01B")
	s.Require().NoError(err)

	list, err := s.store.Tasks().ListTasksByOwner(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("kept", list[0].Title)
}

func (s *StorageSuite) TestCustomPrefix() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "tb-test"
	st := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer st.Close()

	s.Require().NoError(st.Users().CreateUser(s.ctx, domain.User{Name: "bob", PasswordHash: "h", CreatedAt: time.Now()}))
	s.True(s.mini.Exists("tb-test:user:bob"))
}
