package handler

import (
	"net/http"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login 处理管理员登录请求
// 成功后建立会话并返回不含密码哈希的用户信息
func (a *API) Login(c *gin.Context) {
	var req contract.Credentials
	if !bindInput(c, &req) {
		return
	}

	// 查找用户
	var user db.User
	if err := a.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	// 验证密码（bcrypt 内部为常量时间比较）
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "用户名或密码错误")
		return
	}

	// 设置会话
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}

	c.JSON(http.StatusOK, contract.UserBody{ID: user.ID, Username: user.Username})
}

// Logout 处理登出，未登录时同样视为成功
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Status(http.StatusOK)
}

// Me 返回当前会话对应的用户信息
func (a *API) Me(c *gin.Context) {
	session := sessions.Default(c)
	userID, ok := session.Get("user_id").(uint)
	if !ok {
		respondError(c, http.StatusUnauthorized, "未登录")
		return
	}

	var user db.User
	if err := a.db.First(&user, userID).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "会话已失效")
		return
	}

	c.JSON(http.StatusOK, contract.UserBody{ID: user.ID, Username: user.Username})
}

// AuthRequired 是保护写接口的认证中间件
// 会话缺失或无效时直接以 401 拒绝，不触达存储层
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, contract.ErrorBody{Message: "未登录"})
			return
		}
		c.Next()
	}
}
