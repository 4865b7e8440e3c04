package server

import (
	"time"
)

type Config struct {
	Port            int           `yaml:"port"`
	RateBuckets     int           `yaml:"rateBuckets"`
	RatePeriod      time.Duration `yaml:"ratePeriod"`
	RateMaxPending  int           `yaml:"rateMaxPending"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	TLS TLSConfig `yaml:"tls"`
}

// TLSConfig is optional; an empty CertFile disables TLS.
type TLSConfig struct {
	CertFile       string        `yaml:"certFile"`
	KeyFile        string        `yaml:"keyFile"`
	ReloadInterval time.Duration `yaml:"reloadInterval"`
}
