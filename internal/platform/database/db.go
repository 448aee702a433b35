package database

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrStorageUnavailable 表示运行环境拒绝或无法打开本地持久化存储。
var ErrStorageUnavailable = errors.New("本地存储不可用")

// Open 打开（或创建）指定路径上的SQLite数据库并返回连接。
// 主记录库与本地槽位库各自调用一次，保持两个独立的文件。
func Open(path string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 无法打开 %s: %v", ErrStorageUnavailable, path, err)
	}

	return db, nil
}
