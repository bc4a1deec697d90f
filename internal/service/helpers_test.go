package service

import (
	"context"
	"errors"
	"sync"

	"worldstate-be/internal/entity"
)

func pair(v interface{}) []interface{} {
	return []interface{}{v, ""}
}

// worldDoc builds a small but fully populated state document.
func worldDoc() entity.StateDocument {
	return entity.StateDocument{
		"道具": map[string]interface{}{
			"装备": map[string]interface{}{
				"布衫": map[string]interface{}{
					"名称": pair("布衫"),
					"数量": pair(float64(2)),
					"效果": pair("上衣装备"),
				},
			},
			"日常用品": map[string]interface{}{
				"苹果": map[string]interface{}{
					"名称": pair("苹果"),
					"数量": pair(float64(3)),
					"效果": pair("恢复体力"),
				},
			},
		},
		"摘要": []interface{}{
			[]interface{}{
				entity.ExtensibleKey,
				map[string]interface{}{"日期": "2024-01-02", "内容": "第二天"},
				map[string]interface{}{"日期": "2024-01-01", "内容": "第一天"},
			},
			"日记摘要",
		},
		"用户": map[string]interface{}{
			"名称": pair("小明"),
			"货币": pair(float64(100)),
			"当前着装": map[string]interface{}{
				"上衣": pair(""),
				"鞋子": pair("草鞋"),
			},
		},
		"NPC": map[string]interface{}{
			"小红": map[string]interface{}{
				"名称":  pair("小红"),
				"好感度": pair(float64(50)),
			},
		},
		"任务": map[string]interface{}{
			"t001": map[string]interface{}{
				"任务名称": pair("寻找线索"),
				"任务状态": pair("未接受"),
				"任务描述": pair("在村子里打听消息"),
				"奖励":   pair("铜币x10"),
			},
			"t002": map[string]interface{}{
				"任务名称": pair("送信"),
				"任务状态": pair("进行中"),
			},
		},
	}
}

// fakeSurface records render pushes and lets tests toggle visibility.
type fakeSurface struct {
	mu      sync.Mutex
	visible map[entity.WidgetID]bool
	pushes  []entity.WidgetID
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{visible: make(map[entity.WidgetID]bool)}
}

func (f *fakeSurface) ShowsWidget(_ string, widget entity.WidgetID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible[widget]
}

func (f *fakeSurface) Push(_ string, widget entity.WidgetID, _ interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, widget)
}

func (f *fakeSurface) show(widget entity.WidgetID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible[widget] = true
}

func (f *fakeSurface) pushed() []entity.WidgetID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.WidgetID, len(f.pushes))
	copy(out, f.pushes)
	return out
}

// fakeDispatcher fails on demand and records deliveries.
type fakeDispatcher struct {
	name  string
	fail  bool
	sent  []string
	mu    sync.Mutex
	calls int
}

func (f *fakeDispatcher) Name() string { return f.name }

func (f *fakeDispatcher) Dispatch(_ context.Context, _ string, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errors.New("dispatch failed")
	}
	f.sent = append(f.sent, text)
	return nil
}
