package repository

// UserRepository defines known-user data operations
type UserRepository interface {
	AddUser(userID int64) error
	CountUsers() (int, error)
	ListUserIDs(limit, offset int) ([]int64, error)
}

// AdminRepository defines admin set operations
type AdminRepository interface {
	IsAdmin(userID int64) (bool, error)
	AddAdmin(userID int64) error
	RemoveAdmin(userID int64) (bool, error)
}

// BanRepository defines ban set operations
type BanRepository interface {
	IsBanned(userID int64) (bool, error)
	Ban(userID int64) error
	Unban(userID int64) error
}

// ConfigRepository defines key-value config operations
type ConfigRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// ChannelRepository defines forced-subscription channel operations
type ChannelRepository interface {
	ListChannels() ([]string, error)
	AddChannel(name string) error
	RemoveChannel(name string) error
}
