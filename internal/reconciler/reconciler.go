package reconciler

import (
	"context"
	"sort"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/collectible"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
)

// Input holds the three streams of one fetch cycle
type Input struct {
	// Wallets are the queried wallets, used to decide whether a transfer lands in tracked ownership
	Wallets   []string
	Holdings  []domain.Asset
	Creations []domain.OwnershipEvent
	Transfers []domain.OwnershipEvent
}

// Reconciler merges holdings and ownership events into one collectible per key
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	Reconcile(ctx context.Context, input Input) domain.CollectibleState
}

type reconciler struct {
	mapper  collectible.Mapper
	workers int
}

// NewReconciler creates a reconciler materializing collectibles with up to workers concurrent mappings
func NewReconciler(mapper collectible.Mapper, workers int) Reconciler {
	if workers <= 0 {
		workers = 1
	}
	return &reconciler{
		mapper:  mapper,
		workers: workers,
	}
}

// entry is a planned collectible: the asset it is mapped from and the fields reconciliation sets on it
type entry struct {
	asset               domain.Asset
	isOwned             bool
	dateCreated         *string
	dateLastTransferred *string
}

// plan is the key -> entry mapping accumulated in step order.
// Keys are kept in insertion order so the output does not depend on map iteration.
type plan struct {
	entries map[domain.Key]*entry
	order   []domain.Key
}

func newPlan() *plan {
	return &plan{entries: make(map[domain.Key]*entry)}
}

func (p *plan) has(key domain.Key) bool {
	_, ok := p.entries[key]
	return ok
}

func (p *plan) put(key domain.Key, e *entry) {
	if !p.has(key) {
		p.order = append(p.order, key)
	}
	p.entries[key] = e
}

// touch records a transfer date on an existing entry, keeping the most recent one
func (p *plan) touch(key domain.Key, date string) {
	e := p.entries[key]
	if e.dateLastTransferred == nil || *e.dateLastTransferred < date {
		e.dateLastTransferred = &date
	}
}

func (r *reconciler) Reconcile(ctx context.Context, input Input) domain.CollectibleState {
	p := r.plan(ctx, input)
	collectibles := r.materialize(ctx, p)
	return group(collectibles)
}

// plan applies the reconciliation steps in order. Only key membership drives
// the decisions, so no asset needs to be classified yet.
func (r *reconciler) plan(ctx context.Context, input Input) *plan {
	p := newPlan()

	// Current holdings, a later duplicate replaces an earlier one
	for _, asset := range input.Holdings {
		if !r.mapper.Valid(asset) {
			continue
		}
		p.put(asset.Key(), &entry{asset: asset, isOwned: true})
	}
	holdings := len(p.order)

	var nullOrigin, ordinary []domain.OwnershipEvent
	for _, event := range input.Transfers {
		if !r.mapper.Valid(event.Asset) {
			continue
		}
		if event.IsNullOrigin() {
			nullOrigin = append(nullOrigin, event)
		} else {
			ordinary = append(ordinary, event)
		}
	}

	// 1. Null-origin transfers are mints
	for _, event := range latestByKey(nullOrigin) {
		key := event.Asset.Key()
		if p.has(key) {
			p.touch(key, event.CreatedAt)
			continue
		}
		date := event.CreatedAt
		p.put(key, &entry{asset: event.Asset, dateLastTransferred: &date})
	}

	// 2. Creations never override what is already known about a key
	for _, event := range input.Creations {
		if !r.mapper.Valid(event.Asset) {
			continue
		}
		key := event.Asset.Key()
		if p.has(key) {
			continue
		}
		date := event.CreatedAt
		p.put(key, &entry{asset: event.Asset, dateCreated: &date})
	}

	// 3. Ordinary transfers
	discarded := 0
	for _, event := range latestByKey(ordinary) {
		key := event.Asset.Key()
		if p.has(key) {
			p.touch(key, event.CreatedAt)
			continue
		}

		wallet, ok := matchWallet(input.Wallets, event.ToAddress)
		if !ok {
			// Transferred out of every tracked wallet
			discarded++
			continue
		}

		asset := event.Asset
		asset.Wallet = wallet
		date := event.CreatedAt
		p.put(key, &entry{asset: asset, isOwned: true, dateLastTransferred: &date})
	}

	logger.DebugCtx(ctx, "Reconciliation planned",
		zap.Int("holdings", holdings),
		zap.Int("null_origin_transfers", len(nullOrigin)),
		zap.Int("ordinary_transfers", len(ordinary)),
		zap.Int("discarded_transfers", discarded),
		zap.Int("collectibles", len(p.order)),
	)

	return p
}

// materialize maps every planned entry concurrently and applies the reconciled fields
func (r *reconciler) materialize(ctx context.Context, p *plan) []domain.Collectible {
	collectibles := make([]domain.Collectible, len(p.order))
	if len(p.order) == 0 {
		return collectibles
	}

	// Every planned entry is materialized, a canceled context only degrades probing
	pool := pond.NewPool(r.workers)
	for i, key := range p.order {
		e := p.entries[key]
		pool.Submit(func() {
			c := r.mapper.ToCollectible(ctx, e.asset)
			c.IsOwned = e.isOwned
			c.DateCreated = e.dateCreated
			c.DateLastTransferred = e.dateLastTransferred
			collectibles[i] = c
		})
	}
	pool.StopAndWait()

	return collectibles
}

// latestByKey keeps the event with the greatest timestamp per key. ISO-8601
// timestamps order lexicographically. On a tie the later event in the stream wins.
func latestByKey(events []domain.OwnershipEvent) []domain.OwnershipEvent {
	index := make(map[domain.Key]int, len(events))
	var latest []domain.OwnershipEvent
	for _, event := range events {
		key := event.Asset.Key()
		i, ok := index[key]
		if !ok {
			index[key] = len(latest)
			latest = append(latest, event)
			continue
		}
		if latest[i].CreatedAt <= event.CreatedAt {
			latest[i] = event
		}
	}
	return latest
}

// matchWallet finds the queried wallet an address refers to, ignoring case
func matchWallet(wallets []string, address string) (string, bool) {
	for _, w := range wallets {
		if strings.EqualFold(w, address) {
			return w, true
		}
	}
	return "", false
}

// group buckets collectibles by wallet, ordered by key within a wallet
func group(collectibles []domain.Collectible) domain.CollectibleState {
	state := make(domain.CollectibleState)
	for _, c := range collectibles {
		state[c.Wallet] = append(state[c.Wallet], c)
	}
	for wallet := range state {
		sort.Slice(state[wallet], func(i, j int) bool {
			return state[wallet][i].ID < state[wallet][j].ID
		})
	}
	return state
}
