package auth

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"log/slog"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ProviderOption func(*Provider)

func WithPasswordParams(params Argon2Params) ProviderOption {
	return func(p *Provider) { p.params = params }
}

// Provider is a local email/password authentication provider.
// Credentials live in the document store under "credentials/{encoded email}",
// the public profile under "users/{uid}".
//
// Observers are called synchronously, in registration order, while the
// session is being changed. They must not call SignIn, SignOut or Refresh.
type Provider struct {
	store  contract.IDocumentStore
	tokens *TokenIssuer
	params Argon2Params
	log    *slog.Logger

	notifyMu  sync.Mutex
	mu        sync.RWMutex
	session   *domain.Session
	observers map[int]func(domain.SessionEvent)
	nextID    int
}

var _ contract.IAuthProvider = (*Provider)(nil)

func NewProvider(store contract.IDocumentStore, tokens *TokenIssuer, log *slog.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		store:     store,
		tokens:    tokens,
		params:    DefaultArgon2Params,
		log:       log,
		observers: make(map[int]func(domain.SessionEvent)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SignUp creates the account and its profile, then signs the user in.
func (p *Provider) SignUp(ctx context.Context, email, password string) (domain.Session, error) {
	email = NormalizeEmail(email)
	if err := ValidateSignUp(SignUpRequest{Email: email, Password: password}); err != nil {
		return domain.Session{}, err
	}
	hash, err := HashPassword(password, p.params)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", errors.ErrWrite, err)
	}

	uid := uuid.NewString()
	err = p.store.CreateWithID(ctx, domain.CollectionCredentials, credentialID(email), domain.Fields{
		domain.FieldUID:          uid,
		domain.FieldEmail:        email,
		domain.FieldPasswordHash: hash,
	})
	if stderrors.Is(err, errors.ErrAlreadyExists) {
		return domain.Session{}, errors.ErrUserAlreadyExists
	}
	if err != nil {
		return domain.Session{}, err
	}

	profile := domain.Profile{UserID: uid, Email: email}
	err = p.store.Set(ctx, domain.CollectionUsers, uid, domain.Fields{
		domain.FieldUID:         uid,
		domain.FieldEmail:       email,
		domain.FieldDisplayName: "",
		domain.FieldNickname:    "",
		domain.FieldPhotoURL:    "",
	})
	if err != nil {
		// Without a profile the account can't be found by friends, release the email.
		if delErr := p.store.Delete(ctx, domain.CollectionCredentials, credentialID(email)); delErr != nil {
			p.log.Error("Credentials left without profile", "email", email, "error", delErr)
		}
		return domain.Session{}, err
	}
	p.log.Info("Account created", "uid", uid)
	return p.open(profile.Identity())
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	email = NormalizeEmail(email)
	credentials, err := p.store.Get(ctx, domain.CollectionCredentials, credentialID(email))
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.Session{}, errors.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, err
	}
	match, err := ComparePassword(password, credentials.String(domain.FieldPasswordHash))
	if err != nil || !match {
		return domain.Session{}, errors.ErrInvalidCredentials
	}

	uid := credentials.String(domain.FieldUID)
	identity := domain.Identity{ID: uid, Email: email}
	profile, err := p.store.Get(ctx, domain.CollectionUsers, uid)
	switch {
	case err == nil:
		identity = domain.ProfileFromDocument(profile).Identity()
	case stderrors.Is(err, errors.ErrNotFound):
		p.log.Warn("Signing in without profile", "uid", uid)
	default:
		return domain.Session{}, err
	}
	p.log.Info("Signed in", "uid", uid)
	return p.open(identity)
}

// SignOut is a no-op when nobody is signed in.
func (p *Provider) SignOut(_ context.Context) error {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	previous := p.session
	p.session = nil
	ids := p.observerIDs()
	p.mu.Unlock()

	if previous == nil {
		return nil
	}
	p.log.Info("Signed out", "uid", previous.Identity.ID)
	p.notify(ids, domain.SessionEvent{})
	return nil
}

// Refresh re-validates the current token, reloads the profile and re-issues the token.
// Observers are only told when the identity itself changed. An expired
// token or a deleted profile ends the session with an error event.
func (p *Provider) Refresh(ctx context.Context) error {
	current, ok := p.Current()
	if !ok {
		return nil
	}
	if _, err := p.tokens.Validate(current.Token); err != nil {
		p.fail(err)
		return err
	}
	doc, err := p.store.Get(ctx, domain.CollectionUsers, current.Identity.ID)
	if stderrors.Is(err, errors.ErrNotFound) {
		err = fmt.Errorf("%w: profile %s no longer exists", errors.ErrUnauthenticated, current.Identity.ID)
		p.fail(err)
		return err
	}
	if err != nil {
		return err
	}
	_, err = p.open(domain.ProfileFromDocument(doc).Identity())
	return err
}

// Resume signs the user back in from a token issued earlier, e.g. one a CLI
// kept between two runs. The profile is reloaded and a fresh token issued.
func (p *Provider) Resume(ctx context.Context, token string) (domain.Session, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return domain.Session{}, err
	}
	doc, err := p.store.Get(ctx, domain.CollectionUsers, claims.UserID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("%w: profile %s no longer exists", errors.ErrUnauthenticated, claims.UserID)
	}
	if err != nil {
		return domain.Session{}, err
	}
	return p.open(domain.ProfileFromDocument(doc).Identity())
}

func (p *Provider) Current() (domain.Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return domain.Session{}, false
	}
	return *p.session, true
}

// ObserveState calls observer right away with the current state, then on every change.
// The returned function stops the observation and may be called several times.
func (p *Provider) ObserveState(observer func(domain.SessionEvent)) func() {
	p.notifyMu.Lock()
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.observers[id] = observer
	event := p.event()
	p.mu.Unlock()
	observer(event)
	p.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.observers, id)
		})
	}
}

// open issues a token and replaces the session. Observers are notified when
// the identity differs from the previous one.
func (p *Provider) open(identity domain.Identity) (domain.Session, error) {
	token, expiresAt, err := p.tokens.Generate(identity)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{Identity: identity, Token: token, ExpiresAt: expiresAt}

	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	changed := p.session == nil || p.session.Identity != identity
	p.session = &session
	ids := p.observerIDs()
	event := p.event()
	p.mu.Unlock()

	if changed {
		p.notify(ids, event)
	}
	return session, nil
}

func (p *Provider) fail(err error) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	p.mu.Lock()
	p.session = nil
	ids := p.observerIDs()
	p.mu.Unlock()

	p.log.Warn("Session ended by the provider", "error", err)
	p.notify(ids, domain.SessionEvent{Err: err})
}

// event must be called with mu held.
func (p *Provider) event() domain.SessionEvent {
	if p.session == nil {
		return domain.SessionEvent{}
	}
	return domain.SessionEvent{Identity: lo.ToPtr(p.session.Identity)}
}

// observerIDs must be called with mu held.
func (p *Provider) observerIDs() []int {
	ids := make([]int, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// notify calls the observers in registration order. An observer removed
// while the earlier ones run is skipped.
func (p *Provider) notify(ids []int, event domain.SessionEvent) {
	for _, id := range ids {
		p.mu.RLock()
		observer, ok := p.observers[id]
		p.mu.RUnlock()
		if ok {
			observer(copyEvent(event))
		}
	}
}

func copyEvent(event domain.SessionEvent) domain.SessionEvent {
	if event.Identity != nil {
		event.Identity = lo.ToPtr(*event.Identity)
	}
	return event
}

// credentialID keeps emails usable as document ids whatever characters they hold.
func credentialID(email string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(email))
}
