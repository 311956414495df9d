package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetProjects 获取项目列表，按展示顺序升序
func (a *API) GetProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}

	for i := range projects {
		projects[i].DescriptionHTML = renderMarkdown(projects[i].Description)
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var req contract.ProjectCreate
	if !bindInput(c, &req) {
		return
	}

	project, err := a.projects.Create(service.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		RepoURL:      req.RepoURL,
		TechStack:    req.TechStack,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrProjectInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "创建项目失败")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject 部分更新指定项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req contract.ProjectPatch
	if !bindInput(c, &req) {
		return
	}

	project, err := a.projects.Update(id, service.ProjectPatch{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		RepoURL:      req.RepoURL,
		TechStack:    req.TechStack,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "项目不存在")
		case errors.Is(err, service.ErrProjectInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "更新项目失败")
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject 删除指定项目，重复删除同样返回 204
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除项目失败")
		return
	}

	c.Status(http.StatusNoContent)
}
