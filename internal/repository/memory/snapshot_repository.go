package memory

import (
	"fmt"
	"time"

	"worldstate-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SnapshotRepository keeps live snapshots in a go-cache instance. Entries
// expire after an hour of inactivity; an expired snapshot just means the next
// refresh is treated as a change.
type SnapshotRepository struct {
	cache *cache.Cache
}

func NewSnapshotRepository() *SnapshotRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SnapshotRepository{cache: c}
}

func snapshotKey(conversationID string, widget entity.WidgetID) string {
	return fmt.Sprintf("%s/%s", conversationID, widget)
}

func (r *SnapshotRepository) Get(conversationID string, widget entity.WidgetID) (*entity.Snapshot, bool) {
	if x, found := r.cache.Get(snapshotKey(conversationID, widget)); found {
		return x.(*entity.Snapshot), true
	}
	return nil, false
}

func (r *SnapshotRepository) Save(snapshot *entity.Snapshot) {
	r.cache.Set(snapshotKey(snapshot.ConversationID, snapshot.Widget), snapshot, cache.DefaultExpiration)
}

func (r *SnapshotRepository) DeleteConversation(conversationID string) {
	for _, widget := range []entity.WidgetID{
		entity.WidgetInventory, entity.WidgetDiary, entity.WidgetStatus, entity.WidgetQuests,
	} {
		r.cache.Delete(snapshotKey(conversationID, widget))
	}
}
