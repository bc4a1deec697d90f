package service

import (
	"context"
	"testing"

	"worldstate-be/internal/dto"
	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/memory"
	"worldstate-be/pkg/keypath"

	"github.com/stretchr/testify/assert"
)

type widgetFixture struct {
	chats   *memory.ChatRepository
	store   *memory.VariableStore
	surface *fakeSurface
	service IWidgetService
}

func newWidgetFixture(t *testing.T) *widgetFixture {
	t.Helper()
	chats := memory.NewChatRepository()
	store := memory.NewVariableStore()
	surface := newFakeSurface()
	log := logger.NewNopLogger()
	svc := NewWidgetService(
		NewSnapshotService(NewFloorService(chats), store, log),
		NewDiffService(),
		memory.NewSnapshotRepository(),
		surface,
		log,
	)
	return &widgetFixture{chats: chats, store: store, surface: surface, service: svc}
}

func (f *widgetFixture) seed(t *testing.T, doc entity.StateDocument) {
	t.Helper()
	f.chats.SetMessages("conv-1", []string{entity.RoleUser, entity.RoleAssistant})
	assert.NoError(t, f.store.SaveFloorState(context.Background(), "conv-1", 1, doc))
}

func TestRefreshAllStoresWithoutRenderWhenHidden(t *testing.T) {
	f := newWidgetFixture(t)
	f.seed(t, worldDoc())

	assert.NoError(t, f.service.RefreshAll(context.Background(), "conv-1"))
	assert.Empty(t, f.surface.pushed())

	// Baseline is stored anyway: a second pass over unchanged state is quiet
	// even after the widget becomes visible.
	f.surface.show(entity.WidgetInventory)
	assert.NoError(t, f.service.RefreshAll(context.Background(), "conv-1"))
	assert.Empty(t, f.surface.pushed())
}

func TestRefreshAllPushesOnlyChangedVisibleWidgets(t *testing.T) {
	f := newWidgetFixture(t)
	doc := worldDoc()
	f.seed(t, doc)
	assert.NoError(t, f.service.RefreshAll(context.Background(), "conv-1"))

	f.surface.show(entity.WidgetInventory)
	f.surface.show(entity.WidgetQuests)

	assert.NoError(t, keypath.Set(doc, "道具.日常用品.苹果.数量", []interface{}{2, ""}))
	assert.NoError(t, f.store.SaveFloorState(context.Background(), "conv-1", 1, doc))

	assert.NoError(t, f.service.RefreshAll(context.Background(), "conv-1"))
	assert.Equal(t, []entity.WidgetID{entity.WidgetInventory}, f.surface.pushed())
}

func TestGetViewAlwaysReturnsFreshView(t *testing.T) {
	f := newWidgetFixture(t)
	f.seed(t, worldDoc())

	first, err := f.service.GetView(context.Background(), "conv-1", entity.WidgetInventory)
	assert.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Equal(t, 1, first.Floor)
	assert.Equal(t, entity.SourceFloor, first.Source)

	view, ok := first.View.(dto.InventoryView)
	assert.True(t, ok)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, []string{"日常用品", "装备"}, view.Categories)

	// Unchanged state still yields the full view, only the flag drops.
	second, err := f.service.GetView(context.Background(), "conv-1", entity.WidgetInventory)
	assert.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, view, second.View)
}

func TestGetViewEmptyStateYieldsEmptyView(t *testing.T) {
	f := newWidgetFixture(t)

	resp, err := f.service.GetView(context.Background(), "conv-1", entity.WidgetQuests)
	assert.NoError(t, err)
	assert.Equal(t, entity.SourceNone, resp.Source)

	view, ok := resp.View.(dto.QuestView)
	assert.True(t, ok)
	assert.Equal(t, 0, view.Counts.Available+view.Counts.InProgress+view.Counts.Completed)
}

func TestGetViewUnknownWidget(t *testing.T) {
	f := newWidgetFixture(t)
	_, err := f.service.GetView(context.Background(), "conv-1", entity.WidgetID("minimap"))
	assert.Error(t, err)
}
