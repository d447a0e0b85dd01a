package redis

import "fmt"

type keys struct {
	prefix string
}

// user returns the key of the JSON document for a user.
func (k keys) user(name string) string {
	return fmt.Sprintf("%s:user:%s", k.prefix, name)
}

// task returns the key of the JSON document for a task.
func (k keys) task(id string) string {
	return fmt.Sprintf("%s:task:%s", k.prefix, id)
}

// ownerTasks returns the key of the ZSET of task ids owned by owner. All
// members share score 0 so ZRANGE yields them in id order, which for ULIDs
// is creation order.
func (k keys) ownerTasks(owner string) string {
	return fmt.Sprintf("%s:idx:owner_tasks:%s", k.prefix, owner)
}
