package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	DB "github.com/NITHINKR06/wellness/src/database"
	"github.com/NITHINKR06/wellness/src/models"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
// Returns nil if Redis is not available (development mode)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := client.Get(Ctx, key).Result(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

const statsCacheTTL = 10 * time.Minute

func statsKey(ownerID string) string {
	return fmt.Sprintf("stats:%s", ownerID)
}

// CacheOwnerStats เก็บผลรวมสถิติของ owner ไว้ใน Redis
func CacheOwnerStats(ownerID string, stats *models.AssessmentStats) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return client.Set(Ctx, statsKey(ownerID), payload, statsCacheTTL).Err()
}

// GetCachedOwnerStats คืน nil ถ้าไม่มี cache
func GetCachedOwnerStats(ownerID string) (*models.AssessmentStats, error) {
	client := ensureClient()
	if client == nil {
		return nil, nil
	}

	raw, err := client.Get(Ctx, statsKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var stats models.AssessmentStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// InvalidateOwnerStats ลบ cache หลังมีการเขียนข้อมูลใหม่
func InvalidateOwnerStats(ownerID string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, statsKey(ownerID))
}
