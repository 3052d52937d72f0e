package repository

import (
	"testing"

	"github.com/madouyatt95/laserpark/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestWithBumpedVersion(t *testing.T) {
	updates := map[string]interface{}{"status": model.ClosureValidated}

	got := withBumpedVersion(updates, 3)

	assert.Equal(t, 4, got["row_version"])
	assert.Equal(t, model.ClosureValidated, got["status"])
}

func TestWithBumpedVersionLeavesCallerMapUntouched(t *testing.T) {
	updates := map[string]interface{}{"notes": "RAS"}

	_ = withBumpedVersion(updates, 1)
	_ = withBumpedVersion(updates, 2)

	// Reusing the same map across retries must not leak a stale version in.
	assert.Len(t, updates, 1)
	assert.NotContains(t, updates, "row_version")
}
