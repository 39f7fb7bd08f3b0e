package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig 资源配置（assets/config/resources.yaml）
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组可一起加载的资源
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"`
	Sounds []ResourceEntry `yaml:"sounds"`
	Fonts  []ResourceEntry `yaml:"fonts"`
}

// ResourceEntry 单个资源：ID + 相对 base_path 的路径
//
// Example:
//   - id: SOUND_SHOOT
//     path: sounds/shoot.wav
type ResourceEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// parseResourceConfig 解析资源配置并检查 ID 唯一性
func parseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]bool)
	for groupName, group := range cfg.Groups {
		for _, list := range [][]ResourceEntry{group.Images, group.Sounds, group.Fonts} {
			for _, entry := range list {
				if entry.ID == "" || entry.Path == "" {
					return nil, fmt.Errorf("group %s: resource entry needs both id and path", groupName)
				}
				if seen[entry.ID] {
					return nil, fmt.Errorf("duplicate resource id: %s", entry.ID)
				}
				seen[entry.ID] = true
			}
		}
	}

	return &cfg, nil
}

// buildFullPath 拼接 base_path 与相对路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
