package storage

// SettingsRepository is the subset of the settings table repository used
// for key/value persistence.
type SettingsRepository interface {
	GetValue(key string) (string, bool, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// SettingsBackend stores values as rows of the settings table.
type SettingsBackend struct {
	repo SettingsRepository
}

func NewSettingsBackend(repo SettingsRepository) *SettingsBackend {
	return &SettingsBackend{repo: repo}
}

func (b *SettingsBackend) GetItem(key string) (string, bool, error) {
	return b.repo.GetValue(key)
}

func (b *SettingsBackend) SetItem(key, value string) error {
	return b.repo.SetSetting(key, value)
}

func (b *SettingsBackend) RemoveItem(key string) error {
	return b.repo.DeleteSetting(key)
}
