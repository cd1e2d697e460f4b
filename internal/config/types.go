package config

// Mode is the build mode. Only production builds honour BasePath.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Config is the portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Mode        Mode     `yaml:"mode" koanf:"mode"`
	BasePathRaw string   `yaml:"base_path" koanf:"base_path"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	Addr        string   `yaml:"addr" koanf:"addr"`
	SiteURL     string   `yaml:"site_url" koanf:"site_url"`
	LogLevel    string   `yaml:"log_level" koanf:"log_level"`
	Assets      []string `yaml:"assets" koanf:"assets"`
	ContentFile string   `yaml:"content_file" koanf:"content_file"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Mode:      ModeDevelopment,
		OutputDir: "out",
		Addr:      ":8080",
		LogLevel:  "info",
		Assets:    []string{"**/*"},
	}
}
