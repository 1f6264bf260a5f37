package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// RoutingConfig contains the routing defaults applied when the input
// document carries no routing_settings section
type RoutingConfig struct {
	BusWaitTime   float64 `yaml:"bus_wait_time" validate:"omitempty,gt=0"`
	BusVelocity   float64 `yaml:"bus_velocity" validate:"omitempty,gt=0"`
	MaxRouteSpans int     `yaml:"max_route_spans" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Routing RoutingConfig `yaml:"routing"`
}
