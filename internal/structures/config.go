package structures

import "time"

type DiscordConfig struct {
	Token            string `yaml:"token" validate:"required"`
	ClientID         string `yaml:"clientId" validate:"required"`
	GuildID          string `yaml:"guildId" validate:"required"`
	ReviewChannelID  string `yaml:"reviewChannelId" validate:"required"`
	ReviewPingRoleID string `yaml:"reviewPingRoleId"`
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
}

type ScheduleConfig struct {
	TickInterval   time.Duration `yaml:"tickInterval" validate:"required|min:1"`
	UTCOffsetHours int           `yaml:"utcOffsetHours" validate:"min:-12|max:14"`
}

type InterviewConfig struct {
	AnswerTimeout time.Duration `yaml:"answerTimeout" validate:"required|min:1"`
	Questions     []string      `yaml:"questions" validate:"required|minLen:1"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Discord     DiscordConfig   `yaml:"discord"`
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Schedule    ScheduleConfig  `yaml:"schedule"`
	Interview   InterviewConfig `yaml:"interview"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}
