package startup

import (
	"fmt"

	"github.com/SlpAus/wine-journal-backend/internal/platform/localstore"
	"github.com/SlpAus/wine-journal-backend/internal/wine"
	"gorm.io/gorm"
)

// InitializeApplication 是应用首次启动时执行的总入口：
// 迁移主记录库与本地槽位库的表结构。幂等，可在升级后安全重跑。
func InitializeApplication(store *wine.Store, slot *gorm.DB) error {
	fmt.Println("开始应用首次初始化...")

	if err := store.Init(); err != nil {
		return err
	}
	if err := localstore.PrimeDB(slot); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
