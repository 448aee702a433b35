package localstore

import (
	"fmt"

	"gorm.io/gorm"
)

// PrimeDB 负责初始化本地槽位库的键值对表
func PrimeDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("无法迁移本地槽位表: %w", err)
	}
	fmt.Println("本地槽位表迁移成功。")
	return nil
}
