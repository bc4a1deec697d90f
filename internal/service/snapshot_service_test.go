package service

import (
	"context"
	"testing"

	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func newSnapshotFixture(t *testing.T) (*memory.ChatRepository, *memory.VariableStore, ISnapshotService) {
	t.Helper()
	chats := memory.NewChatRepository()
	store := memory.NewVariableStore()
	svc := NewSnapshotService(NewFloorService(chats), store, logger.NewNopLogger())
	return chats, store, svc
}

func TestSnapshotReadPrefersFloorState(t *testing.T) {
	chats, store, svc := newSnapshotFixture(t)
	chats.SetMessages("conv-1", []string{entity.RoleUser, entity.RoleAssistant})
	store.SaveFloorState(context.Background(), "conv-1", 1, entity.StateDocument{"用户": map[string]interface{}{}})
	store.SeedRoot("conv-1", entity.StateDocument{"道具": map[string]interface{}{}})

	doc, floor, source, err := svc.Read(context.Background(), "conv-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, floor)
	assert.Equal(t, entity.SourceFloor, source)
	assert.Contains(t, doc, "用户")
}

func TestSnapshotReadFallsBackToRoot(t *testing.T) {
	chats, store, svc := newSnapshotFixture(t)
	chats.SetMessages("conv-1", []string{entity.RoleUser, entity.RoleAssistant})
	store.SeedRoot("conv-1", entity.StateDocument{"道具": map[string]interface{}{}})
	store.SeedMetadata("conv-1", entity.StateDocument{"任务": map[string]interface{}{}})

	doc, _, source, err := svc.Read(context.Background(), "conv-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.SourceRoot, source)
	assert.Contains(t, doc, "道具")
}

func TestSnapshotReadFallsBackToMetadata(t *testing.T) {
	_, store, svc := newSnapshotFixture(t)
	store.SeedMetadata("conv-1", entity.StateDocument{"任务": map[string]interface{}{}})

	doc, _, source, err := svc.Read(context.Background(), "conv-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.SourceMetadata, source)
	assert.Contains(t, doc, "任务")
}

func TestSnapshotReadEmptyChainIsNotAnError(t *testing.T) {
	_, _, svc := newSnapshotFixture(t)

	doc, floor, source, err := svc.Read(context.Background(), "conv-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.FloorLatest, floor)
	assert.Equal(t, entity.SourceNone, source)
	assert.True(t, doc.IsEmpty())
}
