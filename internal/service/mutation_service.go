package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"worldstate-be/internal/dto"
	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/logger"
	"worldstate-be/internal/repository/contract"
	"worldstate-be/pkg/keypath"

	"github.com/google/uuid"
)

type IMutationService interface {
	EquipItem(ctx context.Context, req *dto.EquipRequest) (*dto.MutationResponse, error)
	UnequipSlot(ctx context.Context, req *dto.UnequipRequest) (*dto.MutationResponse, error)
	ConsumeItem(ctx context.Context, req *dto.ConsumeRequest) (*dto.MutationResponse, error)
	AcceptQuest(ctx context.Context, req *dto.AcceptQuestRequest) (*dto.MutationResponse, error)
}

type mutationService struct {
	floorService    IFloorService
	variableStore   contract.IVariableStore
	auditRepository contract.IAuditRepository
	dispatchService IDispatchService
	widgetService   IWidgetService
	logger          logger.ILogger
}

func NewMutationService(
	floorService IFloorService,
	variableStore contract.IVariableStore,
	auditRepository contract.IAuditRepository,
	dispatchService IDispatchService,
	widgetService IWidgetService,
	log logger.ILogger,
) IMutationService {
	return &mutationService{
		floorService:    floorService,
		variableStore:   variableStore,
		auditRepository: auditRepository,
		dispatchService: dispatchService,
		widgetService:   widgetService,
		logger:          log,
	}
}

// mutation applies ordered key-path writes to one loaded document and records
// an audit row per write. There is no rollback: a failing write aborts the
// operation with whatever reached the document uncommitted.
type mutation struct {
	doc            entity.StateDocument
	conversationID string
	floor          int
	action         string
	operationID    uuid.UUID
	rows           []*entity.MutationAudit
}

func (m *mutation) set(path string, value interface{}, reason string) error {
	if err := keypath.Set(m.doc, path, value); err != nil {
		return fmt.Errorf("%s: %w", m.action, err)
	}
	m.record(path, value, reason)
	return nil
}

func (m *mutation) delete(path, reason string) error {
	if err := keypath.Delete(m.doc, path); err != nil {
		return fmt.Errorf("%s: %w", m.action, err)
	}
	m.record(path, nil, reason)
	return nil
}

func (m *mutation) record(path string, value interface{}, reason string) {
	encoded, _ := json.Marshal(value)
	m.rows = append(m.rows, &entity.MutationAudit{
		Id:             uuid.New(),
		OperationId:    m.operationID,
		ConversationId: m.conversationID,
		Action:         m.action,
		KeyPath:        path,
		Value:          string(encoded),
		Reason:         reason,
		CreatedAt:      time.Now(),
	})
}

// load resolves the state floor and fetches the document mutations operate
// on. Mutations always target floor-scoped state; the fallback layers are
// read-only.
func (s *mutationService) load(ctx context.Context, conversationID, action string) (*mutation, error) {
	floor, err := s.floorService.ResolveStateFloor(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	doc, err := s.variableStore.GetFloorState(ctx, conversationID, floor)
	if err != nil {
		return nil, err
	}
	if doc.IsEmpty() {
		return nil, ErrStateUnavailable
	}
	return &mutation{
		doc:            doc,
		conversationID: conversationID,
		floor:          floor,
		action:         action,
		operationID:    uuid.New(),
	}, nil
}

// commit replaces the floor document, persists the ledger and triggers a
// refresh pass. Ledger and refresh failures are logged, never surfaced.
func (s *mutationService) commit(ctx context.Context, m *mutation) error {
	if err := s.variableStore.SaveFloorState(ctx, m.conversationID, m.floor, m.doc); err != nil {
		return fmt.Errorf("%s: commit: %w", m.action, err)
	}

	if err := s.auditRepository.CreateBulk(ctx, m.rows); err != nil {
		s.logger.Warn("MutationService", "Failed to persist audit rows", map[string]interface{}{
			"operation_id": m.operationID.String(),
			"error":        err.Error(),
		})
	}

	if err := s.widgetService.RefreshAll(ctx, m.conversationID); err != nil {
		s.logger.Warn("MutationService", "Post-mutation refresh failed", map[string]interface{}{
			"conversation_id": m.conversationID,
			"error":           err.Error(),
		})
	}

	s.logger.Info("MutationService", "Mutation committed", map[string]interface{}{
		"operation_id":    m.operationID.String(),
		"action":          m.action,
		"conversation_id": m.conversationID,
		"writes":          len(m.rows),
	})
	return nil
}

// inventoryItem reads one raw inventory entry with its display name and count.
func inventoryItem(doc entity.StateDocument, category, itemKey string) (map[string]interface{}, string, int) {
	inv := doc.Section(entity.SectionInventory)
	if inv == nil {
		return nil, "", 0
	}
	categoryData, ok := inv[category].(map[string]interface{})
	if !ok {
		return nil, "", 0
	}
	raw, ok := categoryData[itemKey].(map[string]interface{})
	if !ok {
		return nil, "", 0
	}
	name := entity.PairString(raw["名称"])
	if name == "" {
		name = itemKey
	}
	return raw, name, int(entity.PairNumber(raw["数量"]))
}

func pairAnnotation(raw interface{}) string {
	if arr, ok := raw.([]interface{}); ok && len(arr) > 1 {
		if s, ok := arr[1].(string); ok {
			return s
		}
	}
	return ""
}

func slotPath(slot string) string {
	return fmt.Sprintf("用户.当前着装.%s[0]", slot)
}

// slotOccupant reads the current item of a clothing slot.
func slotOccupant(doc entity.StateDocument, slot string) string {
	v, ok := keypath.Get(doc, fmt.Sprintf("用户.当前着装.%s[0]", slot))
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// ensureSlotPair makes sure the slot leaf exists as a writable pair so the
// indexed write below cannot miss.
func ensureSlotPair(doc entity.StateDocument, slot string) error {
	path := fmt.Sprintf("用户.当前着装.%s", slot)
	if _, ok := keypath.Get(doc, path+"[0]"); ok {
		return nil
	}
	return keypath.Set(doc, path, []interface{}{"", ""})
}

// returnToInventory puts an unequipped or replaced item back into the 装备
// category, incrementing an existing stack or creating a fresh entry. The
// whole category map is written in one audited step, mirroring how the
// document groups items.
func returnToInventory(m *mutation, itemName, slot, reason string) error {
	category := entity.CategoryEquipment
	inv := m.doc.Section(entity.SectionInventory)

	existing := map[string]interface{}{}
	if inv != nil {
		if cat, ok := inv[category].(map[string]interface{}); ok {
			for k, v := range cat {
				existing[k] = v
			}
		}
	}

	if raw, ok := existing[itemName].(map[string]interface{}); ok {
		count := int(entity.PairNumber(raw["数量"]))
		updated := map[string]interface{}{}
		for k, v := range raw {
			updated[k] = v
		}
		updated["数量"] = []interface{}{count + 1, pairAnnotation(raw["数量"])}
		existing[itemName] = updated
	} else {
		existing[itemName] = map[string]interface{}{
			"名称": []interface{}{itemName, ""},
			"数量": []interface{}{1, ""},
			"效果": []interface{}{slot + "装备", ""},
			"品质": []interface{}{entity.DefaultQuality, ""},
		}
	}

	return m.set(fmt.Sprintf("%s.%s", entity.SectionInventory, category), existing, reason)
}

// decrementItem lowers an inventory stack, deleting the entry when it runs
// out.
func decrementItem(m *mutation, category, itemKey string, raw map[string]interface{}, count, by int, reason string) error {
	remaining := count - by
	path := fmt.Sprintf("%s.%s.%s", entity.SectionInventory, category, itemKey)
	if remaining <= 0 {
		return m.delete(path, reason)
	}
	return m.set(path+".数量", []interface{}{remaining, pairAnnotation(raw["数量"])}, reason)
}

func (s *mutationService) EquipItem(ctx context.Context, req *dto.EquipRequest) (*dto.MutationResponse, error) {
	if !entity.IsEquipmentSlot(req.Slot) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.Slot)
	}

	m, err := s.load(ctx, req.ConversationID, "equip")
	if err != nil {
		return nil, err
	}

	raw, itemName, count := inventoryItem(m.doc, req.Category, req.ItemKey)
	if raw == nil || count <= 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrItemNotFound, req.Category, req.ItemKey)
	}

	occupant := slotOccupant(m.doc, req.Slot)
	if occupant != "" && !req.Confirm {
		return nil, fmt.Errorf("%w: %s holds %s", ErrConfirmationRequired, req.Slot, occupant)
	}

	if occupant != "" {
		if err := returnToInventory(m, occupant, req.Slot, occupant+"返回背包"); err != nil {
			return nil, err
		}
	}

	if err := ensureSlotPair(m.doc, req.Slot); err != nil {
		return nil, fmt.Errorf("equip: %w", err)
	}
	if err := m.set(slotPath(req.Slot), itemName, "装备"+itemName); err != nil {
		return nil, err
	}

	// Re-read: returning the occupant may have rewritten the same category.
	raw, _, count = inventoryItem(m.doc, req.Category, req.ItemKey)
	if raw != nil {
		if err := decrementItem(m, req.Category, req.ItemKey, raw, count, 1, "装备"+itemName); err != nil {
			return nil, err
		}
	}

	if err := s.commit(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MutationResponse{OperationID: m.operationID.String()}, nil
}

func (s *mutationService) UnequipSlot(ctx context.Context, req *dto.UnequipRequest) (*dto.MutationResponse, error) {
	if !entity.IsEquipmentSlot(req.Slot) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.Slot)
	}

	m, err := s.load(ctx, req.ConversationID, "unequip")
	if err != nil {
		return nil, err
	}

	occupant := slotOccupant(m.doc, req.Slot)
	if occupant == "" {
		return nil, fmt.Errorf("%w: %s", ErrSlotEmpty, req.Slot)
	}

	if err := m.set(slotPath(req.Slot), "", "脱下"+req.Slot); err != nil {
		return nil, err
	}
	if err := returnToInventory(m, occupant, req.Slot, occupant+"放入背包"); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MutationResponse{OperationID: m.operationID.String()}, nil
}

func (s *mutationService) ConsumeItem(ctx context.Context, req *dto.ConsumeRequest) (*dto.MutationResponse, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	m, err := s.load(ctx, req.ConversationID, "consume")
	if err != nil {
		return nil, err
	}

	raw, itemName, count := inventoryItem(m.doc, req.Category, req.ItemKey)
	if raw == nil || count <= 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrItemNotFound, req.Category, req.ItemKey)
	}
	if quantity > count {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrInsufficientQuantity, count, quantity)
	}

	if err := decrementItem(m, req.Category, req.ItemKey, raw, count, quantity, "使用"+itemName); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, m); err != nil {
		return nil, err
	}

	message := useMessage(itemName, req.Target, req.Method, quantity)
	if remaining := count - quantity; remaining > 0 {
		message += fmt.Sprintf("。该物品在背包内的剩余数量为：%d", remaining)
	}
	delivered := s.dispatchService.Send(ctx, req.ConversationID, message)

	return &dto.MutationResponse{OperationID: m.operationID.String(), Delivered: delivered}, nil
}

func (s *mutationService) AcceptQuest(ctx context.Context, req *dto.AcceptQuestRequest) (*dto.MutationResponse, error) {
	m, err := s.load(ctx, req.ConversationID, "accept_quest")
	if err != nil {
		return nil, err
	}

	quests := m.doc.Section(entity.SectionQuest)
	if quests == nil {
		return nil, ErrStateUnavailable
	}
	raw, ok := quests[req.QuestKey].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, req.QuestKey)
	}
	if entity.QuestStatusFromRaw(entity.PairString(raw["任务状态"])) != entity.QuestAvailable {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotAcceptable, req.QuestKey)
	}

	questName := entity.PairString(raw["任务名称"])
	if questName == "" {
		questName = req.QuestKey
	}

	statusPath := fmt.Sprintf("%s.%s.任务状态", entity.SectionQuest, req.QuestKey)
	if _, ok := keypath.Get(m.doc, statusPath+"[0]"); !ok {
		if err := keypath.Set(m.doc, statusPath, []interface{}{"", ""}); err != nil {
			return nil, fmt.Errorf("accept_quest: %w", err)
		}
	}
	if err := m.set(statusPath+"[0]", entity.RawQuestInProgress, "接受任务："+questName); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MutationResponse{OperationID: m.operationID.String()}, nil
}

// useMessage phrases the action message for consuming an item, depending on
// which of target and method the user filled in.
func useMessage(itemName, target, method string, quantity int) string {
	var message string

	if target != "" {
		message = fmt.Sprintf("用户选择对%s使用了%s", target, itemName)
		if quantity > 1 {
			message += fmt.Sprintf("，使用数量为%d", quantity)
		}
	}

	if method != "" {
		if message != "" {
			message += "。"
		}
		message += fmt.Sprintf("用户使用物品%s，用法为%s", itemName, method)
		if quantity > 1 && target == "" {
			message += fmt.Sprintf("。使用数量为%d", quantity)
		}
	}

	if target == "" && method == "" {
		message = fmt.Sprintf("用户使用了%s", itemName)
		if quantity > 1 {
			message += fmt.Sprintf("，使用数量为%d", quantity)
		}
	}

	return message
}
