package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("discord.token", "TOKEN")
	viper.BindEnv("discord.clientId", "CLIENT_ID")
	viper.BindEnv("discord.guildId", "GUILD_ID")
	viper.BindEnv("discord.reviewChannelId", "REVIEW_CHANNEL_ID")
	viper.BindEnv("discord.reviewPingRoleId", "REVIEW_PING_ROLE_ID")
	viper.BindEnv("webServer.port", "PORT")
	viper.BindEnv("logger.level", "APPBOT_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "APPBOT_STORE_PATH")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ApplicationBot"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
