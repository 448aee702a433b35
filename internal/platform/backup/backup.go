package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/wine-journal-backend/internal/platform/localstore"
	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"github.com/SlpAus/wine-journal-backend/pkg/lifecycle"
	"gorm.io/gorm"
)

// 默认值与原始应用保持一致：每5分钟一次，最多保留3个世代。
const (
	DefaultInterval       = 5 * time.Minute
	DefaultMaxGenerations = 3
)

// Generation 是备份日志中保留的一个世代：
// 一份完整的导出文档、产生时刻与格式版本号。
type Generation struct {
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// GenerationInfo 是供展示用的世代摘要。
type GenerationInfo struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	WineCount int       `json:"wineCount"`
	Size      int       `json:"size"`
}

// ErrGenerationNotFound 表示请求的世代超出了当前保留范围。
var ErrGenerationNotFound = errors.New("备份世代不存在")

// Scheduler 定期把存储的导出形态快照进有界的轮转日志。
// 日志保存在独立于主记录库的本地槽位中，主库损坏时备份依然可用。
// 备份是尽力而为的辅助机制：它的任何失败都只记录日志、绝不向上传播。
type Scheduler struct {
	codec          *wine.Codec
	slot           *gorm.DB
	interval       time.Duration
	maxGenerations int
	mu             sync.Mutex // 避免定时快照与停机快照竞态
}

// NewScheduler 构造备份调度器。interval 或 maxGenerations 非法时取默认值。
func NewScheduler(codec *wine.Codec, slot *gorm.DB, interval time.Duration, maxGenerations int) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if maxGenerations <= 0 {
		maxGenerations = DefaultMaxGenerations
	}
	return &Scheduler{
		codec:          codec,
		slot:           slot,
		interval:       interval,
		maxGenerations: maxGenerations,
	}
}

// Run 启动后台备份循环：先立即快照一次，之后每个周期快照一次，
// 直到生命周期句柄广播停机信号。最终的停机快照由shutdown协调器负责。
func (s *Scheduler) Run(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("自动备份调度器已启动。")

	if err := s.CreateSnapshot(handle.Ctx()); err != nil {
		fmt.Printf("备份调度器: 初始快照失败: %v\n", err)
	}

	for {
		if err := handle.Sleep(s.interval); err != nil {
			fmt.Println("备份调度器: 休眠被中断，正在关闭...")
			return
		}

		if err := s.CreateSnapshot(handle.Ctx()); err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				fmt.Printf("备份调度器: 定时快照失败: %v\n", err)
			}
		} else {
			fmt.Println("备份调度器: 快照备份成功。")
		}
	}
}

// CreateSnapshot 导出当前存储内容并推入世代日志的队首，
// 超出保留上限的最旧世代被丢弃。
func (s *Scheduler) CreateSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.codec.ExportAll(ctx)
	if err != nil {
		return fmt.Errorf("导出快照数据失败: %w", err)
	}

	generations, err := s.loadGenerations()
	if err != nil {
		return err
	}

	generation := Generation{
		Data:      string(data),
		Timestamp: time.Now(),
		Version:   wine.DocumentVersion,
	}
	generations = append([]Generation{generation}, generations...)
	if len(generations) > s.maxGenerations {
		generations = generations[:s.maxGenerations]
	}

	return s.saveGenerations(generations)
}

// Generations 返回当前保留的世代日志，最新的在前。
func (s *Scheduler) Generations() ([]Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadGenerations()
}

// Info 把世代日志整理为展示用的摘要列表。
func (s *Scheduler) Info() ([]GenerationInfo, error) {
	generations, err := s.Generations()
	if err != nil {
		return nil, err
	}

	infos := make([]GenerationInfo, 0, len(generations))
	for i, g := range generations {
		count := 0
		var doc wine.Document
		if err := json.Unmarshal([]byte(g.Data), &doc); err == nil {
			count = len(doc.Wines)
		}
		infos = append(infos, GenerationInfo{
			Index:     i,
			Timestamp: g.Timestamp,
			WineCount: count,
			Size:      len(g.Data),
		})
	}
	return infos, nil
}

// Restore 通过编解码器重新导入指定世代的数据。
// 恢复是累加式的，不会先清空存储；需要精确还原的调用方必须先Clear。
// 返回新增的记录数。
func (s *Scheduler) Restore(ctx context.Context, index int) (int, error) {
	generations, err := s.Generations()
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(generations) {
		return 0, ErrGenerationNotFound
	}

	added, err := s.codec.ImportAll(ctx, []byte(generations[index].Data))
	if err != nil {
		return 0, fmt.Errorf("从世代 %d 恢复失败: %w", index, err)
	}
	fmt.Printf("已从 %s 的备份恢复 %d 条记录。\n", generations[index].Timestamp.Format(time.RFC3339), added)
	return added, nil
}

func (s *Scheduler) loadGenerations() ([]Generation, error) {
	raw, err := localstore.GetValue(s.slot, localstore.BackupKey)
	if err != nil {
		return nil, fmt.Errorf("读取备份槽位失败: %w", err)
	}
	if raw == "" {
		return []Generation{}, nil
	}

	var generations []Generation
	if err := json.Unmarshal([]byte(raw), &generations); err != nil {
		// 槽位内容损坏时视为空日志，而不是让备份流程失败
		fmt.Printf("备份槽位内容损坏，已重置: %v\n", err)
		return []Generation{}, nil
	}
	return generations, nil
}

func (s *Scheduler) saveGenerations(generations []Generation) error {
	raw, err := json.Marshal(generations)
	if err != nil {
		return fmt.Errorf("序列化世代日志失败: %w", err)
	}
	if err := localstore.SetValue(s.slot, localstore.BackupKey, string(raw)); err != nil {
		return fmt.Errorf("写入备份槽位失败: %w", err)
	}
	return nil
}
