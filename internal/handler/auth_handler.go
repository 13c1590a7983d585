package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验管理员账号并签发令牌
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "用户名和密码不能为空") {
		return
	}

	result, err := a.auth.Login(req.Username, req.Password)
	if err != nil {
		a.logger.Warn("admin login failed", zap.String("username", req.Username), zap.String("ip", clientIP(c.Request)))
		a.respondServiceError(c, err, "登录失败")
		return
	}
	c.JSON(http.StatusOK, result)
}
