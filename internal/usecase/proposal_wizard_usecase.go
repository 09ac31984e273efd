package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/domain/pricing"
	"crm_xpto/internal/domain/validation"
	"crm_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWizardSessionNotFound = errors.New("wizard session not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrUnknownStep           = errors.New("unknown wizard step")
	ErrNotEarlierStep        = errors.New("can only jump back to an earlier step")
	ErrNoNextStep            = errors.New("already on the last step")
	ErrNotOnSummaryStep      = errors.New("submission is only allowed from the summary step")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidSellerID       = errors.New("invalid seller id")
	ErrInvalidCatalogItemID  = errors.New("invalid catalog item id")
	ErrClientNotFound        = errors.New("client not found")
	ErrSellerNotFound        = errors.New("seller not found")
	ErrCatalogItemNotFound   = errors.New("catalog item not found")
	ErrLineItemOutOfRange    = errors.New("line item index out of range")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrSubmissionInFlight    = errors.New("submission already in flight")
)

// Validity defaults applied at submission when the user left the field
// empty: software proposals get a longer window.
const (
	defaultValidityDaysSoftware = 30
	defaultValidityDaysPhysical = 15
)

// WizardSnapshot is the read model handed to the adapter after every
// wizard action: current step, the draft and its freshly derived totals.
type WizardSnapshot struct {
	SessionID   string
	Step        validation.Step
	Draft       entities.DraftProposal
	Totals      entities.Totals
	HasSoftware bool
}

// DraftDetailsUpdate is a partial edit of the draft's scalar fields. Nil
// pointers leave the field untouched.
type DraftDetailsUpdate struct {
	Title                 *string
	Notes                 *string
	PaymentMethod         *entities.PaymentMethod
	ValidityDays          *int
	ClearValidityDays     bool
	GlobalDiscountPercent *decimal.Decimal
	TaxPercent            *decimal.Decimal
}

// LineItemUpdate is a partial edit of one line item.
type LineItemUpdate struct {
	Quantity        *int
	DiscountPercent *decimal.Decimal
}

// IProposalWizardUseCase drives the proposal composition wizard.
//
// Steps run client -> items -> terms -> summary. Forward navigation is
// gated by the step validator; jumping back never is. Every mutation runs
// the draft through the pricing engine before the snapshot is returned, so
// totals can never be observed stale. Validation failures are advisory
// data, not errors: Next and Submit return them in the validation.Result.
type IProposalWizardUseCase interface {
	Open(ctx context.Context, sellerID string) (WizardSnapshot, error)
	Get(ctx context.Context, sessionID string) (WizardSnapshot, error)
	Next(ctx context.Context, sessionID string) (WizardSnapshot, validation.Result, error)
	Back(ctx context.Context, sessionID string, to validation.Step) (WizardSnapshot, error)
	SetClient(ctx context.Context, sessionID, clientID string) (WizardSnapshot, error)
	SetSeller(ctx context.Context, sessionID, sellerID string) (WizardSnapshot, error)
	UpdateDetails(ctx context.Context, sessionID string, upd DraftDetailsUpdate) (WizardSnapshot, error)
	AddLineItem(ctx context.Context, sessionID, catalogItemID string, quantity int, discountPercent decimal.Decimal) (WizardSnapshot, error)
	UpdateLineItem(ctx context.Context, sessionID string, index int, upd LineItemUpdate) (WizardSnapshot, error)
	RemoveLineItem(ctx context.Context, sessionID string, index int) (WizardSnapshot, error)
	Submit(ctx context.Context, sessionID string) (entities.Proposal, validation.Result, error)
	Cancel(ctx context.Context, sessionID string) error
	Catalog(ctx context.Context, filter string) ([]entities.CatalogItem, error)
	Clients(ctx context.Context) ([]entities.Client, error)
	Sellers(ctx context.Context) ([]entities.Seller, error)
	InvalidateLookups()
}

type wizardSession struct {
	id         string
	step       validation.Step
	draft      entities.DraftProposal
	totals     entities.Totals
	submitting bool
	createdAt  time.Time
	updatedAt  time.Time
}

type ProposalWizardUseCase struct {
	mu       sync.Mutex
	sessions map[string]*wizardSession

	catalog *lookupCache[entities.CatalogItem]
	clients *lookupCache[entities.Client]
	sellers *lookupCache[entities.Seller]

	directory interfaces.IDirectoryProvider
	repo      interfaces.IProposalRepository
	tokens    interfaces.ITokenGenerator
	gateway   interfaces.IPaymentLinkGateway

	now func() time.Time
}

var _ IProposalWizardUseCase = (*ProposalWizardUseCase)(nil)

func NewProposalWizardUseCase(
	catalog interfaces.ICatalogProvider,
	directory interfaces.IDirectoryProvider,
	repo interfaces.IProposalRepository,
	tokens interfaces.ITokenGenerator,
	gateway interfaces.IPaymentLinkGateway,
) *ProposalWizardUseCase {
	u := &ProposalWizardUseCase{
		sessions:  make(map[string]*wizardSession),
		directory: directory,
		repo:      repo,
		tokens:    tokens,
		gateway:   gateway,
		now:       time.Now,
	}
	u.catalog = newLookupCache(func(ctx context.Context) ([]entities.CatalogItem, error) {
		return catalog.FetchCatalog(ctx, "")
	})
	u.clients = newLookupCache(directory.FetchClients)
	u.sellers = newLookupCache(directory.FetchSellers)
	return u
}

// Open starts a fresh editing session at the client step. A previously
// selected seller survives re-opens when the caller passes its id; without
// one the session user's seller is preselected when the directory knows it.
func (u *ProposalWizardUseCase) Open(ctx context.Context, sellerID string) (WizardSnapshot, error) {
	seller, err := u.resolveSeller(ctx, sellerID)
	if err != nil {
		return WizardSnapshot{}, err
	}

	s := &wizardSession{
		id:   uuid.NewString(),
		step: validation.StepClient,
		draft: entities.DraftProposal{
			Seller:                seller,
			LineItems:             []entities.LineItem{},
			GlobalDiscountPercent: decimal.Zero,
			TaxPercent:            decimal.Zero,
		},
		createdAt: u.now().UTC(),
	}
	s.updatedAt = s.createdAt
	s.totals = pricing.Refresh(&s.draft)

	u.mu.Lock()
	u.sessions[s.id] = s
	snap := u.snapshotLocked(s)
	u.mu.Unlock()

	log.Printf("[wizard][usecase] session opened session_id=%s seller_set=%t", s.id, seller != nil)
	return snap, nil
}

func (u *ProposalWizardUseCase) Get(ctx context.Context, sessionID string) (WizardSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		return WizardSnapshot{}, err
	}
	return u.snapshotLocked(s), nil
}

// Next validates the current step and advances on success. A failing step
// leaves the wizard where it is; the returned Result carries the
// field-level messages and is not an error.
func (u *ProposalWizardUseCase) Next(ctx context.Context, sessionID string) (WizardSnapshot, validation.Result, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		return WizardSnapshot{}, validation.Result{}, err
	}

	res := validation.ValidateStep(s.step, s.draft)
	if !res.OK {
		return u.snapshotLocked(s), res, nil
	}

	next, ok := s.step.Next()
	if !ok {
		return u.snapshotLocked(s), res, ErrNoNextStep
	}
	s.step = next
	s.updatedAt = u.now().UTC()
	return u.snapshotLocked(s), res, nil
}

// Back jumps to a strictly earlier step. Going backward never re-validates.
func (u *ProposalWizardUseCase) Back(ctx context.Context, sessionID string, to validation.Step) (WizardSnapshot, error) {
	if !to.Valid() {
		return WizardSnapshot{}, ErrUnknownStep
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		return WizardSnapshot{}, err
	}
	if to.Index() >= s.step.Index() {
		return WizardSnapshot{}, ErrNotEarlierStep
	}
	s.step = to
	s.updatedAt = u.now().UTC()
	return u.snapshotLocked(s), nil
}

// SetClient resolves the client from the directory cache and attaches it to
// the draft. The title is auto-derived from the client name only while the
// user has not typed one.
func (u *ProposalWizardUseCase) SetClient(ctx context.Context, sessionID, clientID string) (WizardSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return WizardSnapshot{}, ErrInvalidClientID
	}

	clients, err := u.clients.Get(ctx)
	if err != nil {
		log.Printf("[wizard][usecase] client lookup failed err=%v", err)
		return WizardSnapshot{}, err
	}
	var found *entities.Client
	for i := range clients {
		if clients[i].ID == clientID {
			cp := clients[i]
			found = &cp
			break
		}
	}
	if found == nil {
		return WizardSnapshot{}, ErrClientNotFound
	}

	// mutate re-checks the session under lock, so a lookup that resolves
	// after the wizard closed mutates nothing.
	return u.mutate(sessionID, func(s *wizardSession) error {
		s.draft.Client = found
		if strings.TrimSpace(s.draft.Title) == "" {
			s.draft.Title = "Proposta comercial - " + found.Name
		}
		return nil
	})
}

func (u *ProposalWizardUseCase) SetSeller(ctx context.Context, sessionID, sellerID string) (WizardSnapshot, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return WizardSnapshot{}, ErrInvalidSellerID
	}

	sellers, err := u.sellers.Get(ctx)
	if err != nil {
		log.Printf("[wizard][usecase] seller lookup failed err=%v", err)
		return WizardSnapshot{}, err
	}
	var found *entities.Seller
	for i := range sellers {
		if sellers[i].ID == sellerID {
			cp := sellers[i]
			found = &cp
			break
		}
	}
	if found == nil {
		return WizardSnapshot{}, ErrSellerNotFound
	}

	return u.mutate(sessionID, func(s *wizardSession) error {
		s.draft.Seller = found
		return nil
	})
}

func (u *ProposalWizardUseCase) UpdateDetails(ctx context.Context, sessionID string, upd DraftDetailsUpdate) (WizardSnapshot, error) {
	if upd.PaymentMethod != nil && *upd.PaymentMethod != "" && !upd.PaymentMethod.Valid() {
		return WizardSnapshot{}, ErrInvalidPaymentMethod
	}

	return u.mutate(sessionID, func(s *wizardSession) error {
		if upd.Title != nil {
			s.draft.Title = strings.TrimSpace(*upd.Title)
		}
		if upd.Notes != nil {
			s.draft.Notes = *upd.Notes
		}
		if upd.PaymentMethod != nil {
			s.draft.PaymentMethod = *upd.PaymentMethod
		}
		if upd.ClearValidityDays {
			s.draft.ValidityDays = nil
		} else if upd.ValidityDays != nil {
			days := *upd.ValidityDays
			s.draft.ValidityDays = &days
		}
		if upd.GlobalDiscountPercent != nil {
			s.draft.GlobalDiscountPercent = *upd.GlobalDiscountPercent
		}
		if upd.TaxPercent != nil {
			s.draft.TaxPercent = *upd.TaxPercent
		}
		return nil
	})
}

// AddLineItem appends a catalog item to the cart. Identical items are not
// deduplicated; insertion order is display order.
func (u *ProposalWizardUseCase) AddLineItem(ctx context.Context, sessionID, catalogItemID string, quantity int, discountPercent decimal.Decimal) (WizardSnapshot, error) {
	catalogItemID = strings.TrimSpace(catalogItemID)
	if catalogItemID == "" {
		return WizardSnapshot{}, ErrInvalidCatalogItemID
	}

	items, err := u.catalog.Get(ctx)
	if err != nil {
		log.Printf("[wizard][usecase] catalog lookup failed err=%v", err)
		return WizardSnapshot{}, err
	}
	var found *entities.CatalogItem
	for i := range items {
		if items[i].ID == catalogItemID {
			cp := items[i]
			found = &cp
			break
		}
	}
	if found == nil {
		return WizardSnapshot{}, ErrCatalogItemNotFound
	}

	return u.mutate(sessionID, func(s *wizardSession) error {
		s.draft.LineItems = append(s.draft.LineItems, entities.LineItem{
			Item:            *found,
			Quantity:        quantity,
			DiscountPercent: discountPercent,
		})
		return nil
	})
}

func (u *ProposalWizardUseCase) UpdateLineItem(ctx context.Context, sessionID string, index int, upd LineItemUpdate) (WizardSnapshot, error) {
	return u.mutate(sessionID, func(s *wizardSession) error {
		if index < 0 || index >= len(s.draft.LineItems) {
			return ErrLineItemOutOfRange
		}
		if upd.Quantity != nil {
			s.draft.LineItems[index].Quantity = *upd.Quantity
		}
		if upd.DiscountPercent != nil {
			s.draft.LineItems[index].DiscountPercent = *upd.DiscountPercent
		}
		return nil
	})
}

func (u *ProposalWizardUseCase) RemoveLineItem(ctx context.Context, sessionID string, index int) (WizardSnapshot, error) {
	return u.mutate(sessionID, func(s *wizardSession) error {
		if index < 0 || index >= len(s.draft.LineItems) {
			return ErrLineItemOutOfRange
		}
		s.draft.LineItems = append(s.draft.LineItems[:index], s.draft.LineItems[index+1:]...)
		return nil
	})
}

// Submit finalizes the draft from the summary step: full validation, token
// generation, validity resolution, best-effort checkout link and the
// hand-off to persistence. The session is discarded only after persistence
// confirms; any failure keeps the wizard open on the summary step.
//
// One finalized proposal per draft: the session is flagged as submitting
// under the lock before the gateway and repository calls, so a concurrent
// Submit on the same session is rejected instead of persisting a duplicate.
func (u *ProposalWizardUseCase) Submit(ctx context.Context, sessionID string) (entities.Proposal, validation.Result, error) {
	u.mu.Lock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		u.mu.Unlock()
		return entities.Proposal{}, validation.Result{}, err
	}
	if s.submitting {
		u.mu.Unlock()
		return entities.Proposal{}, validation.Result{}, ErrSubmissionInFlight
	}
	if s.step != validation.StepSummary {
		u.mu.Unlock()
		return entities.Proposal{}, validation.Result{}, ErrNotOnSummaryStep
	}

	res := validation.ValidateStep(validation.StepSummary, s.draft)
	if !res.OK {
		u.mu.Unlock()
		return entities.Proposal{}, res, nil
	}

	s.submitting = true
	s.totals = pricing.Refresh(&s.draft)
	p := u.finalizeLocked(s)
	u.mu.Unlock()

	if u.gateway != nil && (p.PaymentMethod == entities.PaymentMethodCard || p.PaymentMethod == entities.PaymentMethodInstallments) {
		link, err := u.gateway.CreateCheckoutLink(ctx, p)
		if err != nil {
			// Checkout links are a convenience; the proposal is still valid without one.
			log.Printf("[wizard][usecase] checkout link failed proposal_id=%s err=%v", p.ID, err)
		} else {
			p.PaymentLinkURL = link
		}
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		// Clear the in-flight flag so the user can retry from summary.
		u.mu.Lock()
		s.submitting = false
		u.mu.Unlock()
		log.Printf("[wizard][usecase] submission failed session_id=%s err=%v", s.id, err)
		return entities.Proposal{}, res, err
	}

	u.mu.Lock()
	delete(u.sessions, s.id)
	u.mu.Unlock()

	log.Printf("[wizard][usecase] proposal submitted session_id=%s proposal_id=%s total=%s", s.id, created.ID, created.Totals.Total)
	return created, res, nil
}

// Cancel discards the draft unconditionally.
func (u *ProposalWizardUseCase) Cancel(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		return err
	}
	delete(u.sessions, s.id)
	log.Printf("[wizard][usecase] session cancelled session_id=%s", s.id)
	return nil
}

// Catalog returns the cached catalog snapshot, filtered in memory by name
// or category when a filter is given.
func (u *ProposalWizardUseCase) Catalog(ctx context.Context, filter string) ([]entities.CatalogItem, error) {
	items, err := u.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return items, nil
	}
	out := make([]entities.CatalogItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), filter) || strings.Contains(strings.ToLower(it.Category), filter) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (u *ProposalWizardUseCase) Clients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.Get(ctx)
}

func (u *ProposalWizardUseCase) Sellers(ctx context.Context) ([]entities.Seller, error) {
	return u.sellers.Get(ctx)
}

// InvalidateLookups drops the cached catalog and directory snapshots.
func (u *ProposalWizardUseCase) InvalidateLookups() {
	u.catalog.Invalidate()
	u.clients.Invalidate()
	u.sellers.Invalidate()
}

func (u *ProposalWizardUseCase) resolveSeller(ctx context.Context, sellerID string) (*entities.Seller, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID != "" {
		sellers, err := u.sellers.Get(ctx)
		if err != nil {
			return nil, err
		}
		for i := range sellers {
			if sellers[i].ID == sellerID {
				cp := sellers[i]
				return &cp, nil
			}
		}
		return nil, ErrSellerNotFound
	}

	current, err := u.directory.FetchCurrentSeller(ctx)
	if err != nil {
		// The wizard still opens; the user picks a seller on the first step.
		log.Printf("[wizard][usecase] current seller lookup failed err=%v", err)
		return nil, nil
	}
	if current.ID == "" {
		return nil, nil
	}
	return &current, nil
}

// mutate applies one edit under the session lock and re-derives line
// subtotals and totals before returning, so no snapshot ever carries stale
// derived values.
func (u *ProposalWizardUseCase) mutate(sessionID string, fn func(s *wizardSession) error) (WizardSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.sessionLocked(sessionID)
	if err != nil {
		return WizardSnapshot{}, err
	}
	if err := fn(s); err != nil {
		return WizardSnapshot{}, err
	}
	s.totals = pricing.Refresh(&s.draft)
	s.updatedAt = u.now().UTC()
	return u.snapshotLocked(s), nil
}

func (u *ProposalWizardUseCase) sessionLocked(sessionID string) (*wizardSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrWizardSessionNotFound
	}
	return s, nil
}

func (u *ProposalWizardUseCase) snapshotLocked(s *wizardSession) WizardSnapshot {
	draft := s.draft
	draft.LineItems = make([]entities.LineItem, len(s.draft.LineItems))
	copy(draft.LineItems, s.draft.LineItems)
	if s.draft.Client != nil {
		cp := *s.draft.Client
		draft.Client = &cp
	}
	if s.draft.Seller != nil {
		cp := *s.draft.Seller
		draft.Seller = &cp
	}
	if s.draft.ValidityDays != nil {
		days := *s.draft.ValidityDays
		draft.ValidityDays = &days
	}
	return WizardSnapshot{
		SessionID:   s.id,
		Step:        s.step,
		Draft:       draft,
		Totals:      s.totals,
		HasSoftware: s.draft.HasSoftwareItem(),
	}
}

// finalizeLocked builds the persistable proposal from a validated draft:
// validity days fall back to 30 when software is present and 15 otherwise,
// the access token comes from the injected generator.
func (u *ProposalWizardUseCase) finalizeLocked(s *wizardSession) entities.Proposal {
	days := defaultValidityDaysPhysical
	if s.draft.HasSoftwareItem() {
		days = defaultValidityDaysSoftware
	}
	if s.draft.ValidityDays != nil {
		days = *s.draft.ValidityDays
	}

	now := u.now().UTC()
	items := make([]entities.LineItem, len(s.draft.LineItems))
	copy(items, s.draft.LineItems)

	return entities.Proposal{
		ID:                    uuid.NewString(),
		Title:                 s.draft.Title,
		Seller:                *s.draft.Seller,
		Client:                *s.draft.Client,
		LineItems:             items,
		GlobalDiscountPercent: s.draft.GlobalDiscountPercent,
		TaxPercent:            s.draft.TaxPercent,
		Totals:                s.totals,
		PaymentMethod:         s.draft.PaymentMethod,
		ValidityDays:          days,
		ValidUntil:            now.AddDate(0, 0, days),
		Notes:                 s.draft.Notes,
		AccessToken:           u.tokens.Generate(),
		Status:                entities.ProposalStatusPendente,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
