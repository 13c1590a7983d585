package handler

import (
	"net/http"
	"strings"

	"github.com/dotblog/internal/pagination"
	"github.com/dotblog/internal/service"
	"github.com/gin-gonic/gin"
)

type postRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Summary    string   `json:"summary"`
	CoverImage string   `json:"coverImage"`
	Status     string   `json:"status"`
	TagNames   []string `json:"tagNames"`
}

func (r postRequest) input() service.PostInput {
	return service.PostInput{
		Title:      r.Title,
		Slug:       r.Slug,
		Content:    r.Content,
		Summary:    r.Summary,
		CoverImage: r.CoverImage,
		Status:     r.Status,
		TagNames:   r.TagNames,
	}
}

// ListPosts 前台文章列表，过滤优先级：tag > search > 全部已发布
func (a *API) ListPosts(c *gin.Context) {
	q := pagination.FromContext(c, pagination.DefaultSize)

	var (
		page pagination.Page[service.PostDTO]
		err  error
	)
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		page, err = a.posts.ListByTag(tag, q)
	} else if search := strings.TrimSpace(c.Query("search")); search != "" {
		page, err = a.posts.Search(search, q)
	} else {
		page, err = a.posts.ListPublished(q)
	}
	if err != nil {
		a.respondServiceError(c, err, "获取文章列表失败")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetPostBySlug 获取已发布文章并增加浏览量
func (a *API) GetPostBySlug(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil {
		a.respondServiceError(c, err, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListAdminPosts 后台文章列表，包含草稿
func (a *API) ListAdminPosts(c *gin.Context) {
	page, err := a.posts.ListAllForAdmin(pagination.FromContext(c, pagination.DefaultSize))
	if err != nil {
		a.respondServiceError(c, err, "获取文章列表失败")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAdminPost 后台按 ID 获取文章
func (a *API) GetAdminPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		a.respondServiceError(c, err, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost 创建新文章
func (a *API) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "标题、slug 和内容不能为空") {
		return
	}

	post, err := a.posts.Create(req.input())
	if err != nil {
		a.respondServiceError(c, err, "创建文章失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost 更新文章
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	var req postRequest
	if !bindJSON(c, &req, "标题、slug 和内容不能为空") {
		return
	}

	post, err := a.posts.Update(id, req.input())
	if err != nil {
		a.respondServiceError(c, err, "更新文章失败")
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost 删除文章
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		a.respondServiceError(c, err, "删除文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章删除成功"})
}
