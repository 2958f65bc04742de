/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-08-17 10:21:55
 * @LastEditTime: 2026-08-31 15:10:22
 * @LastEditors: 安知鱼
 */
package main

import (
	"log"

	"github.com/mundo-tango/mundo-tango-app/cmd/server"
)

// @title           Mundo Tango Content API
// @version         1.0
// @description     Mundo Tango 内容与审核接口文档
// @termsOfService  http://swagger.io/terms/

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8091
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 在请求头中添加 Bearer Token，格式为: Bearer {token}
func main() {
	// 调用位于 cmd/server 包中的 NewApp 函数来构建整个应用
	app, err := server.NewApp()
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 确保后台任务在程序退出时被停止
	defer app.Stop()

	// 启动应用
	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
