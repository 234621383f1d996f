package session

import (
	"context"
	"encoding/json"
	"sync"

	"nutrifit/store"
)

const (
	tokenKey = "nutrifit.token"
	userKey  = "nutrifit.user"
)

// User is the authenticated identity snapshot cached alongside the token.
type User struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Height             float64  `json:"height"`
	Weight             float64  `json:"weight"`
	TargetWeight       float64  `json:"target_weight"`
	ActivityLevel      string   `json:"activity_level"`
	FitnessGoals       []string `json:"fitness_goals"`
	DailyCalorieTarget int      `json:"daily_calorie_target"`
	DailyWaterTarget   int      `json:"daily_water_target"`
}

// State is the auth state as a closed sum: Anonymous, Loading,
// Authenticated or Errored. Errored is a transient decoration; the next
// operation supersedes it.
type State interface{ isState() }

type Anonymous struct{}

type Loading struct{}

type Authenticated struct {
	User  User
	Token string
}

type Errored struct {
	Message string
}

func (Anonymous) isState()     {}
func (Loading) isState()       {}
func (Authenticated) isState() {}
func (Errored) isState()       {}

// Machine owns the session state and mediates every identity operation.
// Overlapping Login/Register calls are not deduplicated; the state itself
// is mutex-guarded so it is never torn, but the last response to land wins.
type Machine struct {
	mu      sync.Mutex
	state   State
	api     APIClient
	storage store.Storage
	notify  Notifier
}

// New starts in Loading: the caller is expected to run Initialize next to
// attempt silent restore.
func New(api APIClient, storage store.Storage, notify Notifier) *Machine {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Machine{state: Loading{}, api: api, storage: storage, notify: notify}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) IsAuthenticated() bool {
	_, ok := m.State().(Authenticated)
	return ok
}

// CurrentUser returns the authenticated user snapshot, or false outside the
// Authenticated state.
func (m *Machine) CurrentUser() (User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if auth, ok := m.state.(Authenticated); ok {
		return auth.User, true
	}
	return User{}, false
}

func (m *Machine) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// persistCredentials writes the {token, user} pair synchronously so the
// next process start observes consistent data.
func (m *Machine) persistCredentials(token string, user User) {
	_ = m.storage.SetItem(tokenKey, token)
	if b, err := json.Marshal(user); err == nil {
		_ = m.storage.SetItem(userKey, string(b))
	}
}

func (m *Machine) clearCredentials() {
	_ = m.storage.RemoveItem(tokenKey)
	_ = m.storage.RemoveItem(userKey)
}

// Initialize attempts silent re-authentication from the cached credential.
// It is best-effort: any failure, transport errors included, invalidates
// the cache and lands in Anonymous.
func (m *Machine) Initialize(ctx context.Context) {
	token, ok := m.storage.GetItem(tokenKey)
	if !ok || token == "" {
		m.setState(Anonymous{})
		return
	}

	m.api.SetToken(token)
	payload, err := m.api.Get(ctx, "/api/auth/me")
	if err != nil {
		m.clearCredentials()
		m.api.SetToken("")
		m.setState(Anonymous{})
		return
	}

	var user User
	if err := json.Unmarshal(payload, &user); err != nil {
		m.clearCredentials()
		m.api.SetToken("")
		m.setState(Anonymous{})
		return
	}

	m.persistCredentials(token, user)
	m.setState(Authenticated{User: user, Token: token})
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a token. On failure the machine carries
// the Errored decoration and IsAuthenticated stays false.
func (m *Machine) Login(ctx context.Context, email, password string) error {
	m.setState(Loading{})

	payload, err := m.api.Post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return m.fail(err)
	}
	return m.finishLogin(payload, "Welcome back!")
}

// RegisterInput carries the initial profile fields sent at sign-up.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the account and logs straight in. Validation failures
// carrying a field-error list surface every message, comma-joined.
func (m *Machine) Register(ctx context.Context, input RegisterInput) error {
	m.setState(Loading{})

	payload, err := m.api.Post(ctx, "/api/auth/register", input)
	if err != nil {
		return m.fail(err)
	}
	return m.finishLogin(payload, "Account created!")
}

func (m *Machine) finishLogin(payload json.RawMessage, toast string) error {
	var resp loginResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return m.fail(&APIError{Message: "unexpected response from server"})
	}

	m.api.SetToken(resp.Token)
	m.persistCredentials(resp.Token, resp.User)
	m.setState(Authenticated{User: resp.User, Token: resp.Token})
	m.notify.Success(toast)
	return nil
}

func (m *Machine) fail(err error) error {
	msg := normalizeMessage(err)
	m.setState(Errored{Message: msg})
	m.notify.Error(msg)
	return err
}

// Logout clears the credential unconditionally; it cannot fail.
func (m *Machine) Logout() {
	m.clearCredentials()
	m.api.SetToken("")
	m.setState(Anonymous{})
}

// UpdateProfile replaces the cached user snapshot on success. On failure
// the prior snapshot stays intact, no partial merge.
func (m *Machine) UpdateProfile(ctx context.Context, fields map[string]any) error {
	auth, ok := m.State().(Authenticated)
	if !ok {
		return &APIError{Message: "not authenticated"}
	}

	payload, err := m.api.Put(ctx, "/api/users/profile", fields)
	if err != nil {
		msg := normalizeMessage(err)
		m.notify.Error(msg)
		return err
	}

	var user User
	if err := json.Unmarshal(payload, &user); err != nil {
		return &APIError{Message: "unexpected response from server"}
	}

	m.persistCredentials(auth.Token, user)
	m.setState(Authenticated{User: user, Token: auth.Token})
	m.notify.Success("Profile updated")
	return nil
}

// ChangePassword reports its outcome through the notifier only; it never
// transitions the machine.
func (m *Machine) ChangePassword(ctx context.Context, currentPassword, newPassword string) {
	if !m.IsAuthenticated() {
		m.notify.Error("not authenticated")
		return
	}
	_, err := m.api.Put(ctx, "/api/users/password", map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	})
	if err != nil {
		m.notify.Error(normalizeMessage(err))
		return
	}
	m.notify.Success("Password changed")
}

// RefreshToken swaps the bearer token. A refresh failure means the
// credential is unrecoverable, so it forces Logout instead of retrying.
func (m *Machine) RefreshToken(ctx context.Context) {
	auth, ok := m.State().(Authenticated)
	if !ok {
		return
	}

	payload, err := m.api.Post(ctx, "/api/auth/refresh", nil)
	if err != nil {
		m.Logout()
		return
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil || resp.Token == "" {
		m.Logout()
		return
	}

	m.api.SetToken(resp.Token)
	m.persistCredentials(resp.Token, auth.User)
	m.setState(Authenticated{User: auth.User, Token: resp.Token})
}

func normalizeMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Error()
	}
	return "something went wrong"
}
