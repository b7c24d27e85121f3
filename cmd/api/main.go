package main

import (
	"os"

	_ "summarizer/docs" // swagger docs
)

// @title           Summarizer API
// @version         1.0
// @description     URL と要約テキストを保存するサマリー管理 REST API
// @description     作成・取得・一覧・更新・削除を提供します。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
