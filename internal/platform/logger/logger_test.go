package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusware/course-advisor/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "DEBUG", "Info"}

	for _, level := range levels {
		log := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		assert.NotNil(t, log, "level %q", level)
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	assert.NotNil(t, log)
}
