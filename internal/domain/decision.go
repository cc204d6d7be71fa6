package domain

// Access is the outcome of the access gate for a user
type Access int

const (
	AccessAllowed Access = iota
	AccessBanned
	AccessServiceOff
	AccessNeedsSubscription
)

// Decision carries the gate outcome; MissingChannels is set only for
// AccessNeedsSubscription
type Decision struct {
	Access          Access
	MissingChannels []string
}

// Membership statuses reported by the transport for a channel member
const (
	MemberStatusMember  = "member"
	MemberStatusAdmin   = "administrator"
	MemberStatusCreator = "creator"
)

// Subscribed reports whether a membership status counts as subscribed
func Subscribed(status string) bool {
	switch status {
	case MemberStatusMember, MemberStatusAdmin, MemberStatusCreator:
		return true
	}
	return false
}
