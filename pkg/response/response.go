/*
 * @Description: 统一的 API 响应封装
 * @Author: 安知鱼
 * @Date: 2026-08-14 15:02:17
 * @LastEditTime: 2026-08-30 18:22:40
 * @LastEditors: 安知鱼
 */
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created 资源创建成功，返回 201 和新资源的标识。
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// NotFound 目标内容或通知不存在。
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}
