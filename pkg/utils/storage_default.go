//go:build !android

package utils

// EnsureSettingsDir 在打开 gdata 前准备设置目录
// 非 Android 平台由 gdata 自行创建目录
func EnsureSettingsDir() error {
	return nil
}
