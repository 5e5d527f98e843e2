package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/viewtube/internal/model"
)

func setupBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBenchUsers(b *testing.B, db *gorm.DB, n int) []model.User {
	users := make([]model.User, n)
	for i := range users {
		id := fmt.Sprintf("u%05d", i)
		users[i] = model.User{ID: id, Username: id, Email: id + "@example.com", Password: "p"}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}
	return users
}

func BenchmarkSubscriptionToggleWrite(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()
	users := seedBenchUsers(b, db, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rand.Intn(len(users))].ID
		to := users[rand.Intn(len(users))].ID
		if from == to {
			continue
		}
		created, _ := repo.Create(ctx, from, to)
		if !created {
			_, _ = repo.Delete(ctx, from, to)
		}
	}
}

func BenchmarkSubscriptionLists(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	// 一个频道有 N 个订阅者，同时该频道的主人也订阅了 N 个频道
	const N = 5000
	users := seedBenchUsers(b, db, N+1)
	channel := users[0]
	for i := 1; i <= N; i++ {
		_, _ = repo.Create(ctx, users[i].ID, channel.ID)
		_, _ = repo.Create(ctx, channel.ID, users[i].ID)
	}
	opts := ListOptions{Page: 1, PageSize: 50}

	b.ResetTimer()
	b.Run("ListSubscribers", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.ListSubscribers(ctx, channel.ID, opts)
		}
	})

	b.Run("ListChannels", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.ListChannels(ctx, channel.ID, opts)
		}
	})
}

func BenchmarkVideoListJoin(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewVideoRepository(db)
	ctx := context.Background()
	users := seedBenchUsers(b, db, 100)

	videos := make([]model.Video, 5000)
	for i := range videos {
		videos[i] = model.Video{
			ID:          fmt.Sprintf("v%05d", i),
			VideoFile:   "f",
			Thumbnail:   "t",
			Title:       fmt.Sprintf("video %05d", i),
			IsPublished: true,
			OwnerID:     users[i%len(users)].ID,
			Views:       int64(rand.Intn(10000)),
		}
	}
	if err := db.CreateInBatches(&videos, 500).Error; err != nil {
		b.Fatalf("seed videos: %v", err)
	}

	opts := ListOptions{Page: 3, PageSize: 20, SortBy: "views", SortDesc: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = repo.List(ctx, VideoFilter{OnlyPublished: true}, opts)
	}
}
