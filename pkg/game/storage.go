package game

import (
	"fmt"
	"log"

	"github.com/gonewx/horde/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "horde"

// OpenStorage 打开跨平台存储
// 失败时返回错误，调用方可以传 nil 给 RecordsManager 以内存模式运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}

	log.Printf("[Storage] gdata storage opened for %q", appName)
	return manager, nil
}
