package config

// ServerConfig contains HTTP surface configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// UpstreamConfig contains the 12306 endpoints and client settings
type UpstreamConfig struct {
	APIBase        string `yaml:"apiBase" validate:"required,url"`
	SearchAPIBase  string `yaml:"searchAPIBase" validate:"required,url"`
	WebURL         string `yaml:"webURL" validate:"required,url"`
	LCQueryInitURL string `yaml:"lcQueryInitURL" validate:"required,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
	UserAgent      string `yaml:"userAgent"`
}

// QueryConfig contains query engine settings
type QueryConfig struct {
	TimeZone              string `yaml:"timeZone" validate:"required,timezone"`
	InterlineMaxPages     int    `yaml:"interlineMaxPages" validate:"gt=0"`
	DefaultInterlineLimit int    `yaml:"defaultInterlineLimit" validate:"gt=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Upstream UpstreamConfig `yaml:"upstream" validate:"required"`
	Query    QueryConfig    `yaml:"query" validate:"required"`
}
