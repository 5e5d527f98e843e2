package model

import "gorm.io/gorm"

// AutoMigrate 建表（开发与测试环境；生产走独立迁移）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Subscription{},
		&Playlist{},
		&PlaylistVideo{},
		&Tweet{},
	)
}
