package handler

import (
	"net/http"
	"strconv"

	"github.com/dotblog/internal/pagination"
	"github.com/dotblog/internal/service"
	"github.com/gin-gonic/gin"
)

const adminCommentPageSize = 20

type commentRequest struct {
	PostID      uint   `json:"postId" binding:"required"`
	ParentID    *uint  `json:"parentId"`
	AuthorName  string `json:"authorName" binding:"max=50"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email,max=100"`
	Content     string `json:"content" binding:"required"`
}

type commentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListComments 获取文章下已审核通过的评论
func (a *API) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Query("postId"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	comments, err := a.comments.ListApproved(uint(postID))
	if err != nil {
		a.respondServiceError(c, err, "获取评论失败")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment 提交评论，新评论一律进入待审核状态
func (a *API) CreateComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req, "文章ID和评论内容不能为空") {
		return
	}

	comment, err := a.comments.Create(service.CommentInput{
		PostID:      req.PostID,
		ParentID:    req.ParentID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	}, service.RequestMeta{
		IP:        clientIP(c.Request),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		a.respondServiceError(c, err, "提交评论失败")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// ListAdminComments 后台评论列表，包含所有状态
func (a *API) ListAdminComments(c *gin.Context) {
	page, err := a.comments.ListAllForAdmin(pagination.FromContext(c, adminCommentPageSize))
	if err != nil {
		a.respondServiceError(c, err, "获取评论列表失败")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateCommentStatus 审核评论
func (a *API) UpdateCommentStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评论ID")
		return
	}

	var req commentStatusRequest
	if !bindJSON(c, &req, "评论状态不能为空") {
		return
	}

	comment, err := a.comments.UpdateStatus(id, req.Status)
	if err != nil {
		a.respondServiceError(c, err, "更新评论状态失败")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment 删除评论
func (a *API) DeleteComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评论ID")
		return
	}

	if err := a.comments.Delete(id); err != nil {
		a.respondServiceError(c, err, "删除评论失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评论删除成功"})
}
