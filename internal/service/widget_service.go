package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"worldstate-be/internal/dto"
	"worldstate-be/internal/entity"
	"worldstate-be/internal/mapper"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
)

type IWidgetService interface {
	// GetView re-reads state for one widget and returns the fresh view.
	// An explicit open always re-normalizes, even when nothing changed.
	GetView(ctx context.Context, conversationID string, widget entity.WidgetID) (*dto.WidgetViewResponse, error)

	// RefreshAll runs the change-detection pass for every widget of the
	// conversation. Changed widgets get their snapshot replaced; visible
	// ones additionally get a render push.
	RefreshAll(ctx context.Context, conversationID string) error
}

// widgetDescriptor binds a widget id to its normalization. normalize returns
// the comparable record list and the view built from it.
type widgetDescriptor struct {
	id        entity.WidgetID
	normalize func(doc entity.StateDocument) ([]entity.DomainRecord, interface{})
}

type widgetService struct {
	snapshotService ISnapshotService
	diffService     IDiffService
	snapshots       contract.ISnapshotRepository
	surface         contract.IRenderSurface
	descriptors     []widgetDescriptor
	logger          logger.ILogger
}

func NewWidgetService(
	snapshotService ISnapshotService,
	diffService IDiffService,
	snapshots contract.ISnapshotRepository,
	surface contract.IRenderSurface,
	log logger.ILogger,
) IWidgetService {
	inventoryMapper := mapper.NewInventoryMapper()
	diaryMapper := mapper.NewDiaryMapper()
	statusMapper := mapper.NewStatusMapper()
	questMapper := mapper.NewQuestMapper()

	descriptors := []widgetDescriptor{
		{
			id: entity.WidgetInventory,
			normalize: func(doc entity.StateDocument) ([]entity.DomainRecord, interface{}) {
				items := inventoryMapper.ToItems(doc.Section(entity.SectionInventory))
				records := make([]entity.DomainRecord, len(items))
				categorySet := map[string]struct{}{}
				for i, item := range items {
					records[i] = item
					categorySet[item.Category] = struct{}{}
				}
				categories := make([]string, 0, len(categorySet))
				for c := range categorySet {
					categories = append(categories, c)
				}
				sort.Strings(categories)
				return records, dto.InventoryView{Items: items, Categories: categories, Total: len(items)}
			},
		},
		{
			id: entity.WidgetDiary,
			normalize: func(doc entity.StateDocument) ([]entity.DomainRecord, interface{}) {
				entries := diaryMapper.ToEntries(doc[entity.SectionDiary])
				records := make([]entity.DomainRecord, len(entries))
				for i, e := range entries {
					records[i] = e
				}
				return records, dto.DiaryView{Entries: entries}
			},
		},
		{
			id: entity.WidgetStatus,
			normalize: func(doc entity.StateDocument) ([]entity.DomainRecord, interface{}) {
				user := statusMapper.ToCharacterSheet(doc.Section(entity.SectionUser))
				npcs := statusMapper.ToNPCSheets(doc.Section(entity.SectionNPC))
				records := make([]entity.DomainRecord, 0, len(npcs)+1)
				if user != nil {
					records = append(records, *user)
				}
				for _, npc := range npcs {
					records = append(records, npc)
				}
				return records, dto.StatusView{User: user, NPCs: npcs}
			},
		},
		{
			id: entity.WidgetQuests,
			normalize: func(doc entity.StateDocument) ([]entity.DomainRecord, interface{}) {
				quests := questMapper.ToQuests(doc.Section(entity.SectionQuest))
				records := make([]entity.DomainRecord, len(quests))
				for i, q := range quests {
					records[i] = q
				}
				available, inProgress, completed := questMapper.Partition(quests)
				return records, dto.QuestView{
					Available:  available,
					InProgress: inProgress,
					Completed:  completed,
					Counts: dto.QuestCounts{
						Available:  len(available),
						InProgress: len(inProgress),
						Completed:  len(completed),
					},
				}
			},
		},
	}

	return &widgetService{
		snapshotService: snapshotService,
		diffService:     diffService,
		snapshots:       snapshots,
		surface:         surface,
		descriptors:     descriptors,
		logger:          log,
	}
}

func (s *widgetService) descriptor(widget entity.WidgetID) (widgetDescriptor, error) {
	for _, d := range s.descriptors {
		if d.id == widget {
			return d, nil
		}
	}
	return widgetDescriptor{}, fmt.Errorf("unknown widget %q", widget)
}

func (s *widgetService) GetView(ctx context.Context, conversationID string, widget entity.WidgetID) (*dto.WidgetViewResponse, error) {
	desc, err := s.descriptor(widget)
	if err != nil {
		return nil, err
	}

	doc, floor, source, err := s.snapshotService.Read(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	records, view := desc.normalize(doc)
	changed := s.compareAndStore(conversationID, desc.id, floor, source, records)

	return &dto.WidgetViewResponse{
		ConversationID: conversationID,
		Widget:         widget,
		Floor:          floor,
		Source:         source,
		Changed:        changed,
		View:           view,
	}, nil
}

func (s *widgetService) RefreshAll(ctx context.Context, conversationID string) error {
	doc, floor, source, err := s.snapshotService.Read(ctx, conversationID)
	if err != nil {
		return err
	}

	for _, desc := range s.descriptors {
		records, view := desc.normalize(doc)
		if !s.compareAndStore(conversationID, desc.id, floor, source, records) {
			continue
		}

		// Render gate: push only when the widget is actually on screen.
		if s.surface.ShowsWidget(conversationID, desc.id) {
			s.surface.Push(conversationID, desc.id, view)
			s.logger.Debug("WidgetService", "Pushed render", map[string]interface{}{
				"conversation_id": conversationID,
				"widget":          desc.id,
			})
		} else {
			s.logger.Debug("WidgetService", "Stored snapshot without render", map[string]interface{}{
				"conversation_id": conversationID,
				"widget":          desc.id,
			})
		}
	}
	return nil
}

// compareAndStore diffs records against the stored snapshot and replaces it
// when they differ (or none existed). Returns whether a change was seen.
func (s *widgetService) compareAndStore(conversationID string, widget entity.WidgetID, floor int, source entity.SnapshotSource, records []entity.DomainRecord) bool {
	previous, ok := s.snapshots.Get(conversationID, widget)
	changed := !ok || s.diffService.Changed(previous.Records, records)
	if changed {
		s.snapshots.Save(&entity.Snapshot{
			ConversationID: conversationID,
			Widget:         widget,
			Floor:          floor,
			Source:         source,
			Records:        records,
			TakenAt:        time.Now(),
		})
	}
	return changed
}
