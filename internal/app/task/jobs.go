/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-08-15 09:10:28
 * @LastEditTime: 2026-08-15 09:10:33
 * @LastEditors: 安知鱼
 */
// internal/app/task/jobs.go
package task

// Job 与 cron.Job 接口兼容。
type Job interface {
	Run()
	Name() string
}
