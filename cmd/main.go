package main

import (
	"os"

	"nagoyameshi/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           NAGOYAMESHI
// @version         1.0
// @description     名古屋のB級グルメ店舗の検索・予約・レビューサービス
// @description     会員向けと管理者向けの2つの領域を持つ

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
