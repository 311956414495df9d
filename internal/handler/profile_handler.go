package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookieName   = "folio_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// GetProfile 返回公开的个人信息
// 顺带记录一次去重后的访问计数
func (a *API) GetProfile(c *gin.Context) {
	visitorID := a.ensureVisitorID(c)
	if err := a.stats.RecordVisit(visitorID, time.Now().UTC()); err != nil {
		log.Printf("record visit failed: %v", err)
	}

	profile, err := a.profiles.Get()
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "个人信息尚未创建")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取个人信息失败")
		return
	}

	profile.BioHTML = renderMarkdown(profile.Bio)
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile 整行写入个人信息，不存在时创建
func (a *API) UpdateProfile(c *gin.Context) {
	var req contract.ProfileUpsert
	if !bindInput(c, &req) {
		return
	}

	profile, err := a.profiles.Upsert(service.ProfileInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Tagline:   req.Tagline,
		AvatarURL: req.AvatarURL,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "保存个人信息失败")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ensureVisitorID 读取或种下匿名访客 cookie
func (a *API) ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	visitorID := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     visitorCookieName,
		Value:    visitorID,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return visitorID
}
