package main

import (
	"fmt"
	"io"

	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/service"
	"gorm.io/gorm"
)

type samplePost struct {
	title    string
	slug     string
	content  string
	status   db.PostStatus
	tags     []string
	comments []sampleComment
}

type sampleComment struct {
	author  string
	content string
	status  db.CommentStatus
}

var samplePosts = []samplePost{
	{
		title:   "使用Go语言构建高性能Web服务",
		slug:    "go-web-service",
		content: "# 使用Go语言构建高性能Web服务\n\nGo语言因其出色的并发性能和简洁的语法，成为构建高性能Web服务的理想选择。本文分享框架选择、性能优化和实际案例分析。",
		status:  db.PostStatusPublished,
		tags:    []string{"Go", "Web开发"},
		comments: []sampleComment{
			{author: "读者A", content: "写得很清楚，收藏了。", status: db.CommentStatusApproved},
			{author: "读者B", content: "能否再讲讲连接池配置？", status: db.CommentStatusPending},
		},
	},
	{
		title:   "GORM使用技巧与最佳实践",
		slug:    "gorm-tips",
		content: "GORM是Go语言中最流行的ORM库之一。本文总结了**预加载**、*事务*和作用域的常用写法。",
		status:  db.PostStatusPublished,
		tags:    []string{"Go", "数据库"},
		comments: []sampleComment{
			{author: "路人", content: "广告链接", status: db.CommentStatusRejected},
		},
	},
	{
		title:   "SQLite数据库优化实践",
		slug:    "sqlite-tuning",
		content: "SQLite作为轻量级数据库，在很多场景下都有出色表现。本文分享索引优化、查询优化和事务处理等实用技巧。",
		status:  db.PostStatusPublished,
		tags:    []string{"数据库"},
	},
	{
		title:   "Gin框架中间件开发实战（草稿）",
		slug:    "gin-middleware",
		content: "中间件是 Gin 的核心扩展点，这篇还在写。",
		status:  db.PostStatusDraft,
		tags:    []string{"Go", "Web开发"},
	},
}

// seedSampleData 写入示例文章、标签和评论；已有文章时跳过。
func seedSampleData(gdb *gorm.DB, out io.Writer) error {
	var count int64
	if err := gdb.Model(&db.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Fprintln(out, "文章已存在，跳过示例数据")
		return nil
	}

	posts := service.NewPostService(gdb, service.NewTagService(gdb))
	comments := service.NewCommentService(gdb)

	for _, sample := range samplePosts {
		post, err := posts.Create(service.PostInput{
			Title:    sample.title,
			Slug:     sample.slug,
			Content:  sample.content,
			Status:   string(sample.status),
			TagNames: sample.tags,
		})
		if err != nil {
			return fmt.Errorf("create post %s: %w", sample.slug, err)
		}

		for _, c := range sample.comments {
			created, err := comments.Create(service.CommentInput{
				PostID:     post.ID,
				AuthorName: c.author,
				Content:    c.content,
			}, service.RequestMeta{IP: "127.0.0.1", UserAgent: "dotblog-seed"})
			if err != nil {
				return fmt.Errorf("create comment on %s: %w", sample.slug, err)
			}
			if c.status != db.CommentStatusPending {
				if _, err := comments.UpdateStatus(created.ID, string(c.status)); err != nil {
					return fmt.Errorf("moderate comment on %s: %w", sample.slug, err)
				}
			}
		}
		fmt.Fprintf(out, "✅ %s\n", sample.title)
	}

	return nil
}
