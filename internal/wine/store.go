package wine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SlpAus/wine-journal-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotInitialized 表示在 Init 之前调用了存储操作。
var ErrNotInitialized = errors.New("记录存储尚未初始化")

// ErrTransactionFailed 表示底层存储事务被中止，本次操作未产生任何写入。
var ErrTransactionFailed = errors.New("存储事务失败")

// Store 是葡萄酒记录集合的唯一持久化拥有者。
// 它负责铸造ID、盖章时间戳，并提供CRUD、全量扫描与子串搜索。
// 通过 NewStore 显式构造并注入，不使用环境单例。
type Store struct {
	db          *gorm.DB
	initialized bool
}

// NewStore 用一个已打开的数据库连接构造存储。
// 在调用 Init 完成迁移之前，所有操作都会返回 ErrNotInitialized。
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Init 迁移wines表：自增整数主键，以及 name/region/variety/date
// 上的非唯一二级索引（见模型的gorm标签）。幂等，可重复调用。
func (s *Store) Init() error {
	if s.db == nil {
		return ErrNotInitialized
	}
	if err := s.db.AutoMigrate(&Wine{}); err != nil {
		return fmt.Errorf("%w: 无法迁移wines表: %v", database.ErrStorageUnavailable, err)
	}
	s.initialized = true
	return nil
}

// ready 检查存储是否已完成初始化。
func (s *Store) ready() error {
	if s == nil || s.db == nil || !s.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Create 铸造一个全新的ID、盖章CreatedAt并持久化记录。
// 除ID外没有任何唯一性约束，重复内容不会失败。
func (s *Store) Create(ctx context.Context, record Wine) (uint, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	record.ID = 0
	record.CreatedAt = time.Now()
	record.UpdatedAt = nil

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, fmt.Errorf("%w: 创建记录失败: %v", ErrTransactionFailed, err)
	}
	return record.ID, nil
}

// Update 以id为键做整条记录的盲替换（put语义）：
// 强制ID匹配并盖章UpdatedAt，其余字段原样写入（包括调用方传来的CreatedAt）。
// 对不存在的id执行更新会以该id创建新行——有意保留的upsert行为，
// 依赖“通过更新隐式创建”的调用方不应被破坏。
func (s *Store) Update(ctx context.Context, id uint, record Wine) error {
	if err := s.ready(); err != nil {
		return err
	}

	record.ID = id
	now := time.Now()
	record.UpdatedAt = &now

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: 更新记录 %d 失败: %v", ErrTransactionFailed, id, err)
	}
	return nil
}

// Get 按ID点查。记录不存在时返回 (nil, nil)，不视为错误。
func (s *Store) Get(ctx context.Context, id uint) (*Wine, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var record Wine
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取记录 %d 失败: %w", id, err)
	}
	return &record, nil
}

// Remove 删除指定记录。键已不存在时静默成功，删除是终态、没有墓碑。
func (s *Store) Remove(ctx context.Context, id uint) error {
	if err := s.ready(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&Wine{}, id).Error; err != nil {
		return fmt.Errorf("%w: 删除记录 %d 失败: %v", ErrTransactionFailed, id, err)
	}
	return nil
}

// ListAll 返回全部记录，按 Date（缺失时回退CreatedAt）降序排列。
// 这是存储的默认顺序，每次全量扫描都会重新应用；调用方不得依赖插入顺序。
func (s *Store) ListAll(ctx context.Context) ([]Wine, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var records []Wine
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("全量扫描失败: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EffectiveDate().After(records[j].EffectiveDate())
	})
	return records, nil
}

// Search 在 name/producer/region/variety 以及旧版 notes 字段上做
// 大小写不敏感的子串匹配，任一字段命中即入选；结果顺序与 ListAll 一致。
// 注意：结构化品鉴笔记(Tasting.AdditionalNotes)不参与搜索，
// 与原始行为保持一致。
func (s *Store) Search(ctx context.Context, query string) ([]Wine, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]Wine, 0, len(records))
	for _, w := range records {
		if strings.Contains(strings.ToLower(w.Name), needle) ||
			strings.Contains(strings.ToLower(w.Producer), needle) ||
			strings.Contains(strings.ToLower(w.Region), needle) ||
			strings.Contains(strings.ToLower(w.Variety), needle) ||
			strings.Contains(strings.ToLower(w.Notes), needle) {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

// Clear 删除集合中的所有记录，供从备份恢复前清空使用。
func (s *Store) Clear(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&Wine{}).Error; err != nil {
		return fmt.Errorf("%w: 清空集合失败: %v", ErrTransactionFailed, err)
	}
	return nil
}

// CreateAll 在单个事务内批量创建记录：任何一条失败则整批回滚，
// 调用方观察到失败时存储中零条新增。导入流程依赖这一原子性。
func (s *Store) CreateAll(ctx context.Context, records []Wine) error {
	if err := s.ready(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for i := range records {
			records[i].ID = 0
			records[i].CreatedAt = now
			records[i].UpdatedAt = nil
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: 批量创建失败: %v", ErrTransactionFailed, err)
	}
	return nil
}
