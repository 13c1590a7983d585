package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dotblog/internal/config"
	"github.com/dotblog/internal/db"
)

// 示例数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}

	// 初始化数据库
	if _, err := db.Init(db.Options{Driver: cfg.DBDriver, Path: cfg.DatabasePath, DSN: cfg.DatabaseDSN}); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成示例数据...")
	if err := seedSampleData(db.DB, os.Stdout); err != nil {
		log.Fatal("生成示例数据失败:", err)
	}
	fmt.Println("示例数据生成完成！")
}
