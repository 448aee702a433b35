package localstore

import "gorm.io/gorm"

// Entry 定义了本地槽位库中键值对表的结构。
// 这个表存放葡萄酒集合之外的所有本地状态：备份世代日志与两个偏好开关。
// 它位于独立的数据库文件中，主记录库损坏时这里仍然可读。
type Entry struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Key 是槽位的唯一键，例如 "wine-backup"
	Key string `gorm:"uniqueIndex;not null;type:varchar(255)"`

	// Value 存储槽位的值；备份世代日志是一整段JSON，需要text容量
	Value string `gorm:"type:text"`
}
