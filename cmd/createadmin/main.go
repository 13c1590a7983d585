package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dotblog/internal/config"
	"github.com/dotblog/internal/db"
	"github.com/dotblog/internal/service"
	"github.com/dotblog/internal/token"
)

// 创建一个管理员账号，密码可通过 -password 或 ADMIN_PASSWORD 提供
func main() {
	username := flag.String("username", "", "admin username (defaults to ADMIN_USERNAME or admin)")
	password := flag.String("password", "", "admin password (defaults to ADMIN_PASSWORD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if *username == "" {
		*username = cfg.AdminUsername
	}
	if *password == "" {
		*password = cfg.AdminPassword
	}
	if *password == "" {
		fmt.Fprintln(os.Stderr, "必须通过 -password 或 ADMIN_PASSWORD 指定密码")
		os.Exit(2)
	}

	// 初始化数据库
	if _, err := db.Init(db.Options{Driver: cfg.DBDriver, Path: cfg.DatabasePath, DSN: cfg.DatabaseDSN}); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	auth := service.NewAuthService(db.DB, token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL))
	admin, err := auth.CreateAdmin(*username, *password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			fmt.Printf("管理员 %s 已存在，无需创建\n", *username)
			return
		}
		log.Fatal("创建管理员失败:", err)
	}

	fmt.Println("管理员创建成功")
	fmt.Println("用户名:", admin.Username)
}
