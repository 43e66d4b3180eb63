// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain streaming settings. ChunkSize is fixed
// for a session: changing it invalidates all chunk state, so it is not
// live-reconfigurable. ChunkRange is the chunk load radius around the
// camera, in chunks.
type TerrainConfig struct {
	ChunkSize  int `yaml:"chunk_size"`
	ChunkRange int `yaml:"chunk_range"`
}

// DataConfig holds terrain document paths.
type DataConfig struct {
	StorePath string `yaml:"store_path"` // sqlite terrain store
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			ChunkSize:  16,
			ChunkRange: 3,
		},
		Data: DataConfig{
			StorePath: "terrain.db",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
