package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/uboraplatform/ubora/pkg/catalog"
)

// nominalCycleDays is the length of one billing cycle. Proration elsewhere
// divides by the same constant regardless of calendar month length.
const nominalCycleDays = 30

// Draft describes the session to be created. Zero dates default to a full
// cycle starting now; GrantOverride, when set, replaces the catalog grant
// snapshot (used by transitions carrying preserved tokens and by
// pay-as-you-go-only sessions).
type Draft struct {
	PackageType   catalog.Tier
	SessionType   Type
	StartDate     time.Time
	EndDate       time.Time
	DurationDays  int
	AmountPaid    int64
	PaymentMethod string
	Notes         string
	GrantOverride *PackageResources
}

// PurchaseDraft describes one pay-as-you-go buy event.
type PurchaseDraft struct {
	ItemType      catalog.Resource
	Quantity      int64
	AmountPaid    int64
	PaymentMethod string
}

// Service manages the session list inside user records: creation, pay-as-
// you-go additions, usage increments and lookups. Every mutating operation
// is one aggregate read, in-memory work, one aggregate write.
type Service struct {
	store   UserStore
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
	log     *slog.Logger
}

// NewService creates a session Service. Panics if store or catalog are nil
// to fail fast during initialization.
func NewService(store UserStore, cat *catalog.Catalog, opts ...ServiceOption) *Service {
	if store == nil {
		panic("session: UserStore is required")
	}
	if cat == nil {
		panic("session: catalog is required")
	}

	s := &Service{
		store:   store,
		catalog: cat,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession appends a new active session to the user's history. Every
// previously existing session is flagged inactive first, so exactly one
// session is active after the call, and CurrentSessionID points at it.
func (s *Service) CreateSession(ctx context.Context, userID string, draft Draft) (*Session, error) {
	if !draft.PackageType.Valid() {
		return nil, errors.Join(ErrInvalidDraft, errors.New("unknown package type"))
	}
	if !draft.SessionType.Valid() {
		return nil, errors.Join(ErrInvalidDraft, errors.New("unknown session type"))
	}
	if draft.AmountPaid < 0 {
		return nil, errors.Join(ErrInvalidDraft, errors.New("negative amount paid"))
	}

	now := s.now()
	if draft.DurationDays <= 0 {
		draft.DurationDays = nominalCycleDays
	}
	if draft.StartDate.IsZero() {
		draft.StartDate = now
	}
	if draft.EndDate.IsZero() {
		draft.EndDate = draft.StartDate.AddDate(0, 0, draft.DurationDays)
	}
	if !draft.EndDate.After(draft.StartDate) {
		return nil, errors.Join(ErrInvalidDraft, errors.New("end date must be after start date"))
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	grants := s.snapshotGrants(draft.PackageType)
	if draft.GrantOverride != nil {
		grants = *draft.GrantOverride
	}

	for i := range user.Sessions {
		user.Sessions[i].IsActive = false
	}

	sess := Session{
		ID:               s.newID(),
		PackageType:      draft.PackageType,
		SessionType:      draft.SessionType,
		StartDate:        draft.StartDate,
		EndDate:          draft.EndDate,
		DurationDays:     draft.DurationDays,
		AmountPaid:       draft.AmountPaid,
		PaymentMethod:    draft.PaymentMethod,
		IsActive:         true,
		PackageResources: grants,
		PayAsYouGo:       PayAsYouGoResources{},
		Usage:            Usage{},
		Notes:            draft.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	user.Sessions = append(user.Sessions, sess)
	user.CurrentSessionID = sess.ID

	if err := s.saveUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subscription session created",
		slog.String("user_id", userID),
		slog.String("session_id", sess.ID),
		slog.String("package_type", string(sess.PackageType)),
		slog.String("session_type", string(sess.SessionType)),
	)
	return &sess, nil
}

// CreatePayAsYouGoSession records a pay-as-you-go-only purchase as its own
// session. Unlike CreateSession it neither deactivates existing sessions
// nor moves CurrentSessionID: the new session coexists next to the current
// one, and its active flag only means its purchased balance is still live.
// Unused tokens in such sessions are what a later transition carries over.
func (s *Service) CreatePayAsYouGoSession(ctx context.Context, userID string, purchase PurchaseDraft) (*Session, error) {
	if err := validatePurchase(purchase); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tier := catalog.TierStarter
	if current := user.CurrentSession(); current != nil {
		tier = current.PackageType
	}

	sess := Session{
		ID:            s.newID(),
		PackageType:   tier,
		SessionType:   TypePayAsYouGo,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, nominalCycleDays),
		DurationDays:  nominalCycleDays,
		AmountPaid:    purchase.AmountPaid,
		PaymentMethod: purchase.PaymentMethod,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyPurchase(&sess, Purchase{
		ID:           s.newID(),
		ItemType:     purchase.ItemType,
		Quantity:     purchase.Quantity,
		AmountPaid:   purchase.AmountPaid,
		PurchaseDate: now,
	})

	user.Sessions = append(user.Sessions, sess)

	if err := s.saveUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pay-as-you-go session created",
		slog.String("user_id", userID),
		slog.String("session_id", sess.ID),
		slog.String("item_type", string(purchase.ItemType)),
		slog.Int64("quantity", purchase.Quantity),
	)
	return &sess, nil
}

// AddPayAsYouGoResources appends a purchase to the current session and
// bumps the matching resource counter. Additive only.
func (s *Service) AddPayAsYouGoResources(ctx context.Context, userID string, purchase PurchaseDraft) error {
	if err := validatePurchase(purchase); err != nil {
		return err
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	current := user.CurrentSession()
	if current == nil {
		return ErrNoActiveSession
	}

	now := s.now()
	applyPurchase(current, Purchase{
		ID:           s.newID(),
		ItemType:     purchase.ItemType,
		Quantity:     purchase.Quantity,
		AmountPaid:   purchase.AmountPaid,
		PurchaseDate: now,
	})
	current.UpdatedAt = now

	return s.saveUser(ctx, user)
}

// UpdateUsage increments a usage counter on the current session and stamps
// the resource's last-touched time. Counters only grow; negative quantities
// are rejected.
func (s *Service) UpdateUsage(ctx context.Context, userID string, res catalog.Resource, quantity int64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if !validResource(res) {
		return ErrInvalidResource
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	current := user.CurrentSession()
	if current == nil {
		return ErrNoActiveSession
	}

	now := s.now()
	switch res {
	case catalog.ResourceTokens:
		current.Usage.TokensUsed += quantity
		current.Usage.TokensUsedAt = &now
	case catalog.ResourceForms:
		current.Usage.FormsCreated += quantity
		current.Usage.FormsCreatedAt = &now
	case catalog.ResourceDashboards:
		current.Usage.DashboardsCreated += quantity
		current.Usage.DashboardsCreatedAt = &now
	case catalog.ResourceUsers:
		current.Usage.UsersAdded += quantity
		current.Usage.UsersAddedAt = &now
	}
	current.UpdatedAt = now

	return s.saveUser(ctx, user)
}

// DeactivateCurrentSession flags the current session inactive and clears
// the pointer. Cleanup path for callers superseding a session without
// immediately creating its replacement.
func (s *Service) DeactivateCurrentSession(ctx context.Context, userID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	current := user.CurrentSession()
	if current == nil {
		return ErrNoActiveSession
	}

	current.IsActive = false
	current.UpdatedAt = s.now()
	user.CurrentSessionID = ""

	return s.saveUser(ctx, user)
}

// GetCurrentSession returns the user's current session.
func (s *Service) GetCurrentSession(ctx context.Context, userID string) (*Session, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := user.CurrentSession()
	if current == nil {
		return nil, ErrNoActiveSession
	}
	return current, nil
}

// GetAllSessions returns the user's full session history.
func (s *Service) GetAllSessions(ctx context.Context, userID string) ([]Session, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sessions, nil
}

// GetSessionByID returns one session from the user's history.
func (s *Service) GetSessionByID(ctx context.Context, userID, sessionID string) (*Session, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess := user.SessionByID(sessionID)
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetUser returns the full user record. Read-side projections operate on
// the record in memory rather than issuing further reads.
func (s *Service) GetUser(ctx context.Context, userID string) (*UserRecord, error) {
	return s.loadUser(ctx, userID)
}

func (s *Service) snapshotGrants(tier catalog.Tier) PackageResources {
	limits := s.catalog.Limits(tier)
	return PackageResources{
		TokensIncluded:     limits.MonthlyTokens,
		FormsIncluded:      limits.MaxForms,
		DashboardsIncluded: limits.MaxDashboards,
		UsersIncluded:      limits.MaxUsers,
	}
}

func (s *Service) loadUser(ctx context.Context, userID string) (*UserRecord, error) {
	user, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrPersistenceFailure, err)
	}
	return user, nil
}

func (s *Service) saveUser(ctx context.Context, user *UserRecord) error {
	if err := s.store.Save(ctx, user); err != nil {
		return errors.Join(ErrPersistenceFailure, err)
	}
	return nil
}

func validatePurchase(purchase PurchaseDraft) error {
	if !validResource(purchase.ItemType) {
		return errors.Join(ErrInvalidPurchase, errors.New("unknown item type"))
	}
	if purchase.Quantity <= 0 {
		return errors.Join(ErrInvalidPurchase, errors.New("quantity must be positive"))
	}
	if purchase.AmountPaid < 0 {
		return errors.Join(ErrInvalidPurchase, errors.New("negative amount paid"))
	}
	return nil
}

func applyPurchase(sess *Session, purchase Purchase) {
	switch purchase.ItemType {
	case catalog.ResourceTokens:
		sess.PayAsYouGo.Tokens += purchase.Quantity
	case catalog.ResourceForms:
		sess.PayAsYouGo.Forms += purchase.Quantity
	case catalog.ResourceDashboards:
		sess.PayAsYouGo.Dashboards += purchase.Quantity
	case catalog.ResourceUsers:
		sess.PayAsYouGo.Users += purchase.Quantity
	}
	sess.PayAsYouGo.Purchases = append(sess.PayAsYouGo.Purchases, purchase)
}

func validResource(res catalog.Resource) bool {
	switch res {
	case catalog.ResourceTokens, catalog.ResourceForms, catalog.ResourceDashboards, catalog.ResourceUsers:
		return true
	}
	return false
}
