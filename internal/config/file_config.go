package config

// UploadConfig - ограничения для загрузки фотографий объявлений
type UploadConfig struct {
	MaxSize      int64    `yaml:"max_size"`      // Max file size in bytes
	AllowedTypes []string `yaml:"allowed_types"` // Allowed MIME types
	ImageQuality int      `yaml:"image_quality"` // JPEG quality (1-100)
	MaxDimension int      `yaml:"max_dimension"` // Longest side after resize, px
}

func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSize:      10 * 1024 * 1024, // 10MB
		AllowedTypes: []string{"image/jpeg", "image/png"},
		ImageQuality: 85,
		MaxDimension: 1600,
	}
}

func (u UploadConfig) IsAllowedType(contentType string) bool {
	for _, t := range u.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
