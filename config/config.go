package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	Broadcast  Broadcast
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	URL string
}

// Broadcast configures the realtime fan-out side. AppName is the channel
// namespace prefix; external subscribers derive channel names from it, so it
// is part of the wire contract and must not change casually.
type Broadcast struct {
	AppName string `mapstructure:"app_name"`
	Driver  string // "pusher" or "redis"
	Pusher  PusherConfig
}

type PusherConfig struct {
	AppID   string `mapstructure:"app_id"`
	Key     string
	Secret  string
	Cluster string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Broadcast.AppName == "" {
		return nil, errors.New("broadcast.app_name is required")
	}
	return &c, nil
}
