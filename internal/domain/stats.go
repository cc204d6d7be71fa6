package domain

// Stats holds the numbers shown on the admin stats panel
type Stats struct {
	Users    int
	Channels int
	Enabled  bool
}
