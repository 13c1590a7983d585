package handler

import (
	"github.com/dotblog/internal/service"
	"github.com/dotblog/internal/token"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts    *service.PostService
	comments *service.CommentService
	tags     *service.TagService
	auth     *service.AuthService
	logger   *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, tokens *token.Issuer, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	tagService := service.NewTagService(gdb)

	return &API{
		posts:    service.NewPostService(gdb, tagService),
		comments: service.NewCommentService(gdb),
		tags:     tagService,
		auth:     service.NewAuthService(gdb, tokens),
		logger:   logger,
	}
}

// Auth exposes the auth service for start-up seeding.
func (a *API) Auth() *service.AuthService {
	return a.auth
}
