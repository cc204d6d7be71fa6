package domain

// AdminState represents an admin's current workflow state.
// An admin enters a state by pressing a panel button and leaves it
// after exactly one freeform message, whether it succeeded or not.
type AdminState string

const (
	StateIdle              AdminState = "idle"
	StateAwaitingBroadcast AdminState = "awaiting_broadcast"
	StateAwaitingChannel   AdminState = "awaiting_channel"
	StateAwaitingBan       AdminState = "awaiting_ban"
	StateAwaitingUnban     AdminState = "awaiting_unban"
	StateAwaitingAdminAdd  AdminState = "awaiting_admin_add"
	StateAwaitingAdminDel  AdminState = "awaiting_admin_del"
)

// Notice is a best-effort notification to a user produced by a workflow step
type Notice struct {
	UserID int64
	Text   string
}
