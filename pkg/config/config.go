/*
 * @Description: 统一配置管理 (手动加载)
 * @Author: 安知鱼
 * @Date: 2026-08-14 14:40:22
 * @LastEditTime: 2026-08-29 19:03:56
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeyJWTSecret,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyModerationQueueDelayMs, KeyModerationReviewScore,
	KeyModerationAIConfidence, KeyModerationQueueWarnSize,
	KeyModerationRetentionDays,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"
	KeyJWTSecret   = "System.JWTSecret"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	KeyModerationQueueDelayMs  = "Moderation.QueueDelayMs"
	KeyModerationReviewScore   = "Moderation.ReviewScoreThreshold"
	KeyModerationAIConfidence  = "Moderation.AIConfidenceThreshold"
	KeyModerationQueueWarnSize = "Moderation.QueueWarnSize"
	KeyModerationRetentionDays = "Moderation.DeletedRetentionDays"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读 ini 文件作为默认值，再用环境变量覆盖。
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				// 构建 Viper 使用的 key，例如 "Moderation.QueueDelayMs"
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "MUNDOTANGO"

	for _, key := range allKeys {
		// 构建环境变量名，例如 MUNDOTANGO_REDIS_ADDR
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))

		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetFloat64(key string) float64 {
	return c.vp.GetFloat64(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	defaultConfig := `[System]
Port = 8091
Debug = false
# 用于签发审核后台 Token，生产环境务必修改
JWTSecret = change-me

# Redis 配置（可选）
# 如果不配置或留空 Addr，系统将自动使用内存缓存
[Redis]
Addr =
Password =
DB = 0

[Moderation]
# 队列排空时每条内容之间的节流间隔（毫秒）
QueueDelayMs = 50
# 自动评分低于该值的内容进入人工审核
ReviewScoreThreshold = 70
# 启发式置信度低于该值时追加 AI Detection 标记
AIConfidenceThreshold = 0.7
# 待处理积压超过该数量时定时任务输出告警
QueueWarnSize = 100
# deleted 状态内容的物理保留天数
DeletedRetentionDays = 30
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
