package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type tagRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetTags 获取标签列表
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.tags.ListAll()
	if err != nil {
		a.respondServiceError(c, err, "获取标签列表失败")
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag 创建新标签
func (a *API) CreateTag(c *gin.Context) {
	var req tagRequest
	if !bindJSON(c, &req, "标签名称不能为空") {
		return
	}

	tag, err := a.tags.Create(req.Name)
	if err != nil {
		a.respondServiceError(c, err, "创建标签失败")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag 删除标签
func (a *API) DeleteTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的标签ID")
		return
	}

	if err := a.tags.Delete(id); err != nil {
		a.respondServiceError(c, err, "删除标签失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "标签删除成功"})
}
