// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 以 "data/" 开头的路径从嵌入资源读取，使用前必须调用 Init()；
// 其他路径（如玩家自定义关卡文件）直接从磁盘读取。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：统一为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// isEmbeddedPath 判断路径是否指向嵌入资源
func isEmbeddedPath(path string) bool {
	return strings.HasPrefix(path, dataPrefix)
}

var errNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Open 打开文件
// "data/" 路径从嵌入资源打开，其他路径从磁盘打开
func Open(path string) (fs.File, error) {
	path = normalize(path)
	if !isEmbeddedPath(path) {
		return os.Open(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return dataFS.Open(path)
}

// ReadFile 读取文件内容
// "data/" 路径从嵌入资源读取，其他路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	if !isEmbeddedPath(path) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入资源中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	pattern = normalize(pattern)
	if !isEmbeddedPath(pattern) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return fs.Glob(dataFS, pattern)
}

// ReadDir 读取嵌入资源目录内容
// 路径必须以 "data/" 开头
func ReadDir(path string) ([]fs.DirEntry, error) {
	path = normalize(path)
	if !isEmbeddedPath(path) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return fs.ReadDir(dataFS, strings.TrimSuffix(path, "/"))
}
