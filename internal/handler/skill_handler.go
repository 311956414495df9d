package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetSkills 获取技能列表
func (a *API) GetSkills(c *gin.Context) {
	skills, err := a.skills.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取技能列表失败")
		return
	}

	c.JSON(http.StatusOK, skills)
}

// CreateSkill 创建新技能
func (a *API) CreateSkill(c *gin.Context) {
	var req contract.SkillCreate
	if !bindInput(c, &req) {
		return
	}

	skill, err := a.skills.Create(service.SkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
	})
	if err != nil {
		if errors.Is(err, service.ErrSkillInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "创建技能失败")
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill 部分更新指定技能
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	var req contract.SkillPatch
	if !bindInput(c, &req) {
		return
	}

	skill, err := a.skills.Update(id, service.SkillPatch{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSkillNotFound):
			respondError(c, http.StatusNotFound, "技能不存在")
		case errors.Is(err, service.ErrSkillInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "更新技能失败")
		}
		return
	}

	c.JSON(http.StatusOK, skill)
}

// DeleteSkill 删除指定技能，重复删除同样返回 204
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	if err := a.skills.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除技能失败")
		return
	}

	c.Status(http.StatusNoContent)
}
