package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.anops.dev/ao/internal/core/domain"
)

func TestImageTag(t *testing.T) {
	assert.Equal(t, "demo-api-service:latest", domain.ImageTag("demo", domain.APIServiceDir))
	assert.Equal(t, "demo-model-service:latest", domain.ImageTag("demo", domain.ModelServiceDir))
}

func TestRequiredLayout_DirsBeforeFiles(t *testing.T) {
	// Validation order is part of the user experience: directories first.
	assert.Equal(t, []string{"api-service", "model-service", "model-interface"}, domain.RequiredDirs)

	for _, f := range domain.RequiredFiles {
		assert.Contains(t, domain.RequiredDirs, f.Dir)
	}
}

func TestProjectConfig_TaskLookup(t *testing.T) {
	cfg := &domain.ProjectConfig{
		Tasks: map[string][]string{"empty": {}},
	}

	cmds, ok := cfg.Task("empty")
	assert.True(t, ok)
	assert.Empty(t, cmds)

	_, ok = cfg.Task("absent")
	assert.False(t, ok)
}
