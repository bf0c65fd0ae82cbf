package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `yaml:"name"`
		Port string `yaml:"port"`
	} `yaml:"app"`
	Scrape struct {
		// Timeout bounds every remote page fetch, in seconds.
		Timeout int `yaml:"timeout"`
		Sources struct {
			Bangalore string `yaml:"bangalore"`
			Goa       string `yaml:"goa"`
			Mumbai    string `yaml:"mumbai"`
		} `yaml:"sources"`
	} `yaml:"scrape"`
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("app.name", "admission-api")
	viper.SetDefault("app.port", ":8080")
	viper.SetDefault("scrape.timeout", 10)
	viper.SetDefault("scrape.sources.bangalore", "https://bangaloreuniversity.karnataka.gov.in/notifications")
	viper.SetDefault("scrape.sources.goa", "https://www.unigoa.ac.in/systems/c/admissions/announcementsnotices.html")
	viper.SetDefault("scrape.sources.mumbai", "https://mu.ac.in/department-announcements")

	// The service holds no credentials, so a missing config file is fine;
	// the defaults above cover every key.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Failed to unmarshal config: %v", err)
	}
}
