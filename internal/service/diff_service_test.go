package service

import (
	"testing"

	"worldstate-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func items(names ...string) []entity.DomainRecord {
	out := make([]entity.DomainRecord, len(names))
	for i, n := range names {
		out[i] = entity.Item{Name: n, Category: "装备", Description: "暂无描述", Quantity: 1}
	}
	return out
}

func TestDiffIdenticalRecords(t *testing.T) {
	svc := NewDiffService()
	assert.False(t, svc.Changed(items("布衫", "草鞋"), items("布衫", "草鞋")))
}

func TestDiffLengthChange(t *testing.T) {
	svc := NewDiffService()
	assert.True(t, svc.Changed(items("布衫"), items("布衫", "草鞋")))
	assert.True(t, svc.Changed(items("布衫", "草鞋"), items("布衫")))
}

func TestDiffFieldChange(t *testing.T) {
	svc := NewDiffService()
	old := items("布衫")
	updated := []entity.DomainRecord{
		entity.Item{Name: "布衫", Category: "装备", Description: "暂无描述", Quantity: 2},
	}
	assert.True(t, svc.Changed(old, updated))
}

func TestDiffIsOrderSensitive(t *testing.T) {
	svc := NewDiffService()
	assert.True(t, svc.Changed(items("布衫", "草鞋"), items("草鞋", "布衫")))
}

func TestDiffBothEmpty(t *testing.T) {
	svc := NewDiffService()
	assert.False(t, svc.Changed(nil, nil))
	assert.False(t, svc.Changed([]entity.DomainRecord{}, nil))
}
