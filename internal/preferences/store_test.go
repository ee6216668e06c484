package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"rentdesk/internal/i18n"
	"rentdesk/internal/models"
	"rentdesk/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	key, value string
}

// recordingStore 记录每次写入
type recordingStore struct {
	*kvstore.MemoryStore
	writes []write
	failOn string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryStore: kvstore.NewMemoryStore()}
}

func (r *recordingStore) Set(ctx context.Context, key, value string) error {
	if key == r.failOn {
		return errors.New("quota exceeded")
	}
	r.writes = append(r.writes, write{key, value})
	return r.MemoryStore.Set(ctx, key, value)
}

func strPtr(s string) *string { return &s }

func TestStore_Defaults(t *testing.T) {
	s := NewStore(kvstore.NewMemoryStore())
	s.Load(context.Background())

	st := s.State()
	assert.False(t, st.DarkMode)
	assert.Equal(t, "en", st.Language)
	assert.Equal(t, models.DefaultUserProfile(), st.User)
	assert.Equal(t, "password123", st.User.Password)
}

func TestStore_LoadPersistedValues(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemoryStore()
	require.NoError(t, storage.Set(ctx, KeyDarkMode, "true"))
	require.NoError(t, storage.Set(ctx, KeyLanguage, "fr"))

	var applied []bool
	s := NewStore(storage, WithTheme(ThemeFunc(func(dark bool) { applied = append(applied, dark) })))
	s.Load(ctx)

	assert.True(t, s.State().DarkMode)
	assert.Equal(t, "fr", s.State().Language)
	assert.Equal(t, []bool{true}, applied)
}

func TestStore_LoadIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemoryStore()
	require.NoError(t, storage.Set(ctx, KeyDarkMode, "not-a-bool"))
	require.NoError(t, storage.Set(ctx, KeyLanguage, ""))

	s := NewStore(storage)
	s.Load(ctx)

	assert.False(t, s.State().DarkMode)
	assert.Equal(t, "en", s.State().Language)
}

func TestStore_ToggleDarkModeTwice(t *testing.T) {
	ctx := context.Background()
	storage := newRecordingStore()
	var applied []bool
	s := NewStore(storage, WithTheme(ThemeFunc(func(dark bool) { applied = append(applied, dark) })))

	assert.True(t, s.ToggleDarkMode(ctx))
	assert.False(t, s.ToggleDarkMode(ctx))

	assert.False(t, s.State().DarkMode)
	assert.Equal(t, []write{{KeyDarkMode, "true"}, {KeyDarkMode, "false"}}, storage.writes)
	assert.Equal(t, []bool{true, false}, applied)
}

func TestStore_SetLanguagePersistsRawCode(t *testing.T) {
	ctx := context.Background()
	storage := newRecordingStore()
	s := NewStore(storage)

	s.SetLanguage(ctx, "xx-unknown")

	assert.Equal(t, "xx-unknown", s.State().Language)
	assert.Equal(t, []write{{KeyLanguage, "xx-unknown"}}, storage.writes)
}

func TestStore_ChangePassword(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kvstore.NewMemoryStore())

	assert.False(t, s.ChangePassword(ctx, "wrong", "abcdef"))
	assert.Equal(t, "password123", s.State().User.Password)

	assert.True(t, s.ChangePassword(ctx, "password123", "abcdef"))
	assert.Equal(t, "abcdef", s.State().User.Password)

	// 旧密码已失效
	assert.False(t, s.ChangePassword(ctx, "password123", "zzzzzz"))
	assert.Equal(t, "abcdef", s.State().User.Password)
}

func TestStore_UpdateUserShallowMerge(t *testing.T) {
	ctx := context.Background()
	storage := newRecordingStore()
	s := NewStore(storage)

	s.UpdateUser(ctx, ProfilePatch{Name: strPtr(""), Phone: strPtr("+44 20 7946 0000")})

	user := s.State().User
	assert.Equal(t, "", user.Name)
	assert.Equal(t, "+44 20 7946 0000", user.Phone)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "password123", user.Password)
	// 默认不持久化资料
	assert.Empty(t, storage.writes)
}

func TestStore_ProfilePersistenceOptIn(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemoryStore()
	s := NewStore(storage, WithProfilePersistence(true))
	s.UpdateUser(ctx, ProfilePatch{Name: strPtr("Jane Roe")})

	raw, ok, err := storage.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	var saved models.UserProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.Equal(t, "Jane Roe", saved.Name)

	reloaded := NewStore(storage, WithProfilePersistence(true))
	reloaded.Load(ctx)
	assert.Equal(t, "Jane Roe", reloaded.State().User.Name)
}

func TestStore_WriteFailureKeepsMemoryState(t *testing.T) {
	storage := newRecordingStore()
	storage.failOn = KeyLanguage
	s := NewStore(storage)

	s.SetLanguage(context.Background(), "es")

	assert.Equal(t, "es", s.State().Language)
	assert.Empty(t, storage.writes)
}

func TestStore_Translate(t *testing.T) {
	ctx := context.Background()
	fr := i18n.Dictionary{i18n.KeyTenants: "Locataires"}
	en := i18n.Dictionary{i18n.KeyTenants: "Tenants", i18n.KeyFullName: "Full Name"}
	s := NewStore(kvstore.NewMemoryStore(), WithCatalog(i18n.NewCatalog(map[string]i18n.Dictionary{"en": en, "fr": fr})))

	assert.Equal(t, "Tenants", s.Translate("tenants"))
	assert.Equal(t, "nonexistentKey", s.Translate("nonexistentKey"))

	s.SetLanguage(ctx, "fr")
	assert.Equal(t, "Locataires", s.Translate("tenants"))
	assert.Equal(t, "Full Name", s.Translate("fullName"))
	assert.Equal(t, "nonexistentKey", s.Translate("nonexistentKey"))
}
