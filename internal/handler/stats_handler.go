package handler

import (
	"net/http"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/view"
	"github.com/gin-gonic/gin"
)

// GetStats 返回后台面板的各项计数
func (a *API) GetStats(c *gin.Context) {
	overview, err := a.stats.Overview()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取统计数据失败")
		return
	}

	c.JSON(http.StatusOK, contract.StatsBody{
		SkillCount:   overview.SkillCount,
		ProjectCount: overview.ProjectCount,
		SocialCount:  overview.SocialCount,
		VisitCount:   overview.VisitCount,
	})
}

// GetIcons 返回后台可选的社交图标选项
func (a *API) GetIcons(c *gin.Context) {
	c.JSON(http.StatusOK, view.SocialIconOptions())
}
