package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSocials 获取社交链接列表
func (a *API) GetSocials(c *gin.Context) {
	socials, err := a.socials.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取社交链接失败")
		return
	}

	c.JSON(http.StatusOK, socials)
}

// CreateSocial 创建新社交链接
func (a *API) CreateSocial(c *gin.Context) {
	var req contract.SocialCreate
	if !bindInput(c, &req) {
		return
	}

	social, err := a.socials.Create(service.SocialInput{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Active:   req.Active,
	})
	if err != nil {
		if errors.Is(err, service.ErrSocialInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "创建社交链接失败")
		return
	}

	c.JSON(http.StatusCreated, social)
}

// UpdateSocial 部分更新指定社交链接
func (a *API) UpdateSocial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接ID")
		return
	}

	var req contract.SocialPatch
	if !bindInput(c, &req) {
		return
	}

	social, err := a.socials.Update(id, service.SocialPatch{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		Active:   req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSocialNotFound):
			respondError(c, http.StatusNotFound, "社交链接不存在")
		case errors.Is(err, service.ErrSocialInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "更新社交链接失败")
		}
		return
	}

	c.JSON(http.StatusOK, social)
}

// DeleteSocial 删除指定社交链接，重复删除同样返回 204
func (a *API) DeleteSocial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接ID")
		return
	}

	if err := a.socials.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除社交链接失败")
		return
	}

	c.Status(http.StatusNoContent)
}
