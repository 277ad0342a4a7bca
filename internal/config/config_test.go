package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Store:  StoreConfig{Backend: StoreBackendFile, FilePath: "appointments.json"},
		Twilio: TwilioConfig{
			AccountSID: "AC123",
			AuthToken:  "token",
			FromNumber: "+15550001111",
		},
		Scheduler: SchedulerConfig{IntervalMinutes: 5},
	}
}

func TestConfigValidation(t *testing.T) {
	config := validConfig()
	assert.NoError(t, config.Validate())

	missingPort := validConfig()
	missingPort.Server.Port = ""
	assert.Error(t, missingPort.Validate())

	missingTwilio := validConfig()
	missingTwilio.Twilio.AuthToken = ""
	assert.Error(t, missingTwilio.Validate())

	badInterval := validConfig()
	badInterval.Scheduler.IntervalMinutes = 0
	assert.Error(t, badInterval.Validate())
}

func TestStoreBackendValidation(t *testing.T) {
	fileNoPath := validConfig()
	fileNoPath.Store.FilePath = ""
	assert.Error(t, fileNoPath.Validate())

	dbBackend := validConfig()
	dbBackend.Store = StoreConfig{Backend: StoreBackendDatabase}
	assert.Error(t, dbBackend.Validate())

	dbBackend.Database = DatabaseConfig{Host: "localhost", User: "app", DBName: "appointments"}
	assert.NoError(t, dbBackend.Validate())

	unknown := validConfig()
	unknown.Store.Backend = "redis"
	assert.Error(t, unknown.Validate())
}

func TestEmailValidation(t *testing.T) {
	config := validConfig()
	config.Email = EmailConfig{Enabled: true}
	assert.Error(t, config.Validate())

	config.Email = EmailConfig{
		Enabled:      true,
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "refresh",
		FromAddress:  "office@example.com",
	}
	assert.NoError(t, config.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
	}

	dsn := config.GetDSN()
	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=True&loc=Local"
	assert.Equal(t, expected, dsn)
}
