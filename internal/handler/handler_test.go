package handler

import (
	"testing"

	"supportbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHandler_WorkflowStates(t *testing.T) {
	h := &Handler{states: make(map[int64]domain.AdminState)}

	// Unknown admin is idle
	assert.Equal(t, domain.StateIdle, h.GetState(100))

	h.SetState(100, domain.StateAwaitingBan)
	assert.Equal(t, domain.StateAwaitingBan, h.GetState(100))

	// One state per admin; setting replaces
	h.SetState(100, domain.StateAwaitingBroadcast)
	assert.Equal(t, domain.StateAwaitingBroadcast, h.GetState(100))

	// Other admins are unaffected
	assert.Equal(t, domain.StateIdle, h.GetState(200))

	h.ResetState(100)
	assert.Equal(t, domain.StateIdle, h.GetState(100))
}
