package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) AddUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ListUserIDs(limit, offset int) ([]int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockAdminRepository is a mock for AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) AddAdmin(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAdminRepository) RemoveAdmin(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// MockBanRepository is a mock for BanRepository
type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) IsBanned(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBanRepository) Ban(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockBanRepository) Unban(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockConfigRepository is a mock for ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockConfigRepository) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// MockChannelRepository is a mock for ChannelRepository
type MockChannelRepository struct {
	mock.Mock
}

func (m *MockChannelRepository) ListChannels() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChannelRepository) AddChannel(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockChannelRepository) RemoveChannel(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// MockMembershipChecker is a mock for service.MembershipChecker
type MockMembershipChecker struct {
	mock.Mock
}

func (m *MockMembershipChecker) MemberStatus(channel string, userID int64) (string, error) {
	args := m.Called(channel, userID)
	return args.String(0), args.Error(1)
}

// MockBroadcastSender is a mock for service.BroadcastSender
type MockBroadcastSender struct {
	mock.Mock
}

func (m *MockBroadcastSender) SendText(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
