package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dineopen/reservation-app/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// CacheTTL bounds how stale a cached availability report can get.
const CacheTTL = 60 * time.Second

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: config.AppConfig.RedisAddr,
		DB:   0,
	})

	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func availabilityKey(restaurantID uint, date string, partySize int) string {
	return fmt.Sprintf("availability:%d:%s:%d", restaurantID, date, partySize)
}

// GetAvailability returns a cached availability report body, or "" on miss.
// Safe to call when redis is not initialized.
func GetAvailability(restaurantID uint, date string, partySize int) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, availabilityKey(restaurantID, date, partySize)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetAvailability caches a serialized availability report.
func SetAvailability(restaurantID uint, date string, partySize int, body string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, availabilityKey(restaurantID, date, partySize), body, CacheTTL)
}

// InvalidateAvailability drops every cached report for a date. Called after
// any reservation write touching that date.
func InvalidateAvailability(restaurantID uint, date string) {
	if Client == nil {
		return
	}
	pattern := fmt.Sprintf("availability:%d:%s:*", restaurantID, date)
	iter := Client.Scan(Ctx, 0, pattern, 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
