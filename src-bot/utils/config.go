package utils

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	port string

	discordAppToken string
	discordClientId string

	ownerID      int64
	ownerGuildID int64

	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		discordAppToken: func() string {
			discordAppToken := os.Getenv("DISCORD_APP_TOKEN")
			if discordAppToken == "" {
				slog.Error("DISCORD_APP_TOKEN is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_APP_TOKEN", discordAppToken[0:3]+"...")
			return discordAppToken
		}(),
		discordClientId: func() string {
			discordClientId := os.Getenv("DISCORD_CLIENT_ID")
			if discordClientId == "" {
				slog.Error("DISCORD_CLIENT_ID is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_CLIENT_ID", discordClientId)
			return discordClientId
		}(),

		ownerID: func() int64 {
			ownerIDStr := os.Getenv("OWNER_ID")
			if ownerIDStr == "" {
				slog.Error("OWNER_ID is not set")
				os.Exit(1)
			}
			ownerID, err := strconv.ParseInt(ownerIDStr, 10, 64)
			if err != nil {
				slog.Error("invalid OWNER_ID", "OWNER_ID", ownerIDStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "OWNER_ID", ownerID)
			return ownerID
		}(),
		ownerGuildID: func() int64 {
			ownerGuildIDStr := os.Getenv("OWNER_GUILD_ID")
			if ownerGuildIDStr == "" {
				slog.Error("OWNER_GUILD_ID is not set")
				os.Exit(1)
			}
			ownerGuildID, err := strconv.ParseInt(ownerGuildIDStr, 10, 64)
			if err != nil {
				slog.Error("invalid OWNER_GUILD_ID", "OWNER_GUILD_ID", ownerGuildIDStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "OWNER_GUILD_ID", ownerGuildID)
			return ownerGuildID
		}(),

		metricCollectionInterval: func() time.Duration {
			metricCollectionInterval := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if metricCollectionInterval == "" {
				slog.Warn("METRIC_COLLECTION_INTERVAL is not set")
				metricCollectionInterval = "1m"
			}
			duration, err := time.ParseDuration(metricCollectionInterval)
			if err != nil {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", metricCollectionInterval, "duration", duration)
			return duration
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get DISCORD_APP_TOKEN env
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get DISCORD_CLIENT_ID env
func (c *Config) GetDiscordClientId() string {
	return c.discordClientId
}

// Get OWNER_ID env
func (c *Config) GetOwnerID() int64 {
	return c.ownerID
}

// Get OWNER_GUILD_ID env
func (c *Config) GetOwnerGuildID() int64 {
	return c.ownerGuildID
}

// Get METRIC_COLLECTION_INTERVAL env, default to 1m
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
