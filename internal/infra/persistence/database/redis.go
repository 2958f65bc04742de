/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-08-17 11:30:55
 * @LastEditTime: 2026-08-22 14:02:19
 * @LastEditors: 安知鱼
 */
package database

import (
	"context"
	"log"

	"github.com/mundo-tango/mundo-tango-app/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 接收配置并返回 Redis 客户端或 nil（用于自动降级）
// 如果 Redis 未配置或连接失败，返回 nil 而不是 error，让上层决定是否降级到内存缓存
func NewRedisClient(ctx context.Context, cfg *config.Config) *redis.Client {
	redisAddr := cfg.GetString(config.KeyRedisAddr)
	if redisAddr == "" {
		log.Println("⚠️  Redis 地址未配置，将使用内存缓存")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.GetString(config.KeyRedisPassword),
		DB:       cfg.GetInt(config.KeyRedisDB),
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  连接 Redis (%s) 失败: %v，将使用内存缓存", redisAddr, err)
		rdb.Close()
		return nil
	}

	log.Printf("✅ 成功连接到 Redis: %s", redisAddr)
	return rdb
}
