// Package game ties the world, the player, the undo history and the event bus
// into one Session. Every player action runs to completion, including spawns
// and event delivery, before it returns.
package game

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geocoin/internal/coin"
	"github.com/vovakirdan/geocoin/internal/config"
	"github.com/vovakirdan/geocoin/internal/events"
	"github.com/vovakirdan/geocoin/internal/grid"
	"github.com/vovakirdan/geocoin/internal/memento"
	"github.com/vovakirdan/geocoin/internal/world"
)

// ErrEmptyHistory is returned by Undo when there is nothing to restore.
var ErrEmptyHistory = errors.New("game: no saved state to restore")

// Session is one independent game: its own coins, world, player and history.
type Session struct {
	cfg    config.Config
	grid   grid.Grid
	start  grid.LatLng
	logger *log.Logger

	registry *coin.Registry
	world    *world.World
	player   *world.Player
	history  *memento.Manager
	bus      *events.Bus
	visited  map[grid.Cell]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for session diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStart places the player at p instead of the grid origin.
func WithStart(p grid.LatLng) Option {
	return func(s *Session) {
		s.start = p
	}
}

// New creates a session from cfg and generates the starting neighborhood.
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		grid:   cfg.Grid(),
		start:  cfg.World.Origin,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registry = coin.NewRegistry(coin.NewKindTable(cfg.Kinds))
	s.history = memento.NewManager(
		memento.WithLimit(cfg.History.Limit),
		memento.WithLogger(s.logger),
	)
	s.bus = events.NewBus(s.logger)
	s.init()
	return s
}

// init builds a fresh world and player at the start position.
func (s *Session) init() {
	s.world = world.New(s.registry, s.cfg.Spawn.MinCoins, s.cfg.Spawn.MaxCoins)
	s.player = world.NewPlayer(s.start)
	s.visited = make(map[grid.Cell]struct{})
	s.arrive()
}

// Move steps the player one cell in dir.
func (s *Session) Move(dir grid.Direction) {
	before := s.checkpoint(s.cfg.History.CheckpointMove)
	s.player.Position = s.grid.Shift(s.player.Position, dir.Delta())
	s.commit(before)

	spawned := s.arrive()
	s.logger.Debug("player moved", "dir", dir, "cell", s.Cell(), "spawned", len(spawned))
	s.announceMove(dir.String(), spawned)
}

// MoveTo places the player at p, e.g. from a device location fix.
func (s *Session) MoveTo(p grid.LatLng) {
	before := s.checkpoint(s.cfg.History.CheckpointMove)
	s.player.Position = p
	s.commit(before)

	spawned := s.arrive()
	s.logger.Debug("player relocated", "position", p, "cell", s.Cell(), "spawned", len(spawned))
	s.announceMove("to "+p.String(), spawned)
}

// Collect takes the coin with the given ID from the cache at the player's cell.
func (s *Session) Collect(id string) error {
	return s.CollectFrom(id, s.Cell())
}

// CollectFrom takes the coin with the given ID from the cache at cell.
func (s *Session) CollectFrom(id string, cell grid.Cell) error {
	c, err := s.lookup(id)
	if err != nil {
		return s.failed(err)
	}

	before := s.checkpoint(s.cfg.History.CheckpointCoin)
	if err := s.world.Collect(s.player, c, cell); err != nil {
		return s.failed(err)
	}
	s.commit(before)

	s.logger.Debug("coin collected", "coin", c.ID(), "cache", cell)
	s.bus.Notifyf(events.CoinCollected, "Collected %s from cache %s", c, cell)
	return nil
}

// CollectFirst collects the first coin of the cache at the player's cell.
func (s *Session) CollectFirst() error {
	site, ok := s.world.Site(s.Cell())
	if !ok || len(site.Coins) == 0 {
		return s.failed(fmt.Errorf("%w: cache %s is empty", world.ErrNotFound, s.Cell()))
	}
	return s.Collect(site.Coins[0].ID())
}

// Deposit drops the held coin with the given ID into the player's cell.
func (s *Session) Deposit(id string) error {
	return s.DepositTo(id, s.Cell())
}

// DepositTo drops the held coin with the given ID into the cache at cell.
func (s *Session) DepositTo(id string, cell grid.Cell) error {
	c, err := s.lookup(id)
	if err != nil {
		return s.failed(err)
	}

	before := s.checkpoint(s.cfg.History.CheckpointCoin)
	if err := s.world.Deposit(s.player, c, cell); err != nil {
		return s.failed(err)
	}
	s.commit(before)

	s.logger.Debug("coin deposited", "coin", c.ID(), "cache", cell)
	s.bus.Notifyf(events.CoinDeposited, "Deposited %s into cache %s", c, cell)
	return nil
}

// DepositLast drops the most recently collected coin into the player's cell.
func (s *Session) DepositLast() error {
	last := s.player.Last()
	if last == nil {
		return s.failed(fmt.Errorf("%w: inventory is empty", world.ErrNotFound))
	}
	return s.Deposit(last.ID())
}

// Save pushes the current state onto the undo history.
func (s *Session) Save() {
	s.history.Push(s.Snapshot())
	s.bus.Notifyf(events.StateSaved, "Game state saved. Total saves: %d", s.history.Len())
}

// Undo pops the latest saved state and makes it live.
func (s *Session) Undo() error {
	snap, ok := s.history.Load()
	if !ok {
		s.bus.Notify(events.EmptyHistory, "No saved states available.")
		return ErrEmptyHistory
	}
	s.restore(snap)
	s.bus.Notifyf(events.StateLoaded, "Game state loaded. Remaining saves: %d", s.history.Len())
	return nil
}

// Reset clears the history and starts a fresh world with the player back at
// the start. Coin identities survive, so a coin ID always names one coin.
func (s *Session) Reset() {
	s.history.Reset()
	s.init()
	s.logger.Debug("session reset", "coins", s.registry.Len())
	s.bus.Notify(events.GameReset, "Game state has been reset.")
}

// Snapshot captures the current player and world as plain values.
func (s *Session) Snapshot() memento.Snapshot {
	snap := memento.Snapshot{
		Player: memento.PlayerData{
			Position:  s.player.Position,
			Inventory: refs(s.player.Inventory),
		},
		World:   make(memento.WorldData),
		Decided: make(map[string]bool),
	}
	for cell, coins := range s.world.Contents() {
		snap.World[cell.Key()] = refs(coins)
	}
	for cell, spawned := range s.world.DecidedCells() {
		snap.Decided[cell.Key()] = spawned
	}
	return snap
}

// Bus returns the event bus observers subscribe to.
func (s *Session) Bus() *events.Bus {
	return s.bus
}

// Config returns the session configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Grid returns the grid positions are mapped onto.
func (s *Session) Grid() grid.Grid {
	return s.grid
}

// Position returns the player's coordinate.
func (s *Session) Position() grid.LatLng {
	return s.player.Position
}

// Cell returns the player's cell.
func (s *Session) Cell() grid.Cell {
	return s.player.Cell(s.grid)
}

// Inventory returns a copy of the held coins in collection order.
func (s *Session) Inventory() []*coin.Coin {
	return slices.Clone(s.player.Inventory)
}

// Score returns the total value of held coins.
func (s *Session) Score() int {
	return s.player.Value()
}

// Site returns the cache at cell.
func (s *Session) Site(cell grid.Cell) (world.Site, bool) {
	return s.world.Site(cell)
}

// Sites returns every cache in the world, visible or not.
func (s *Session) Sites() []world.Site {
	return s.world.Sites()
}

// VisibleSites returns the caches within the visibility radius of the player.
func (s *Session) VisibleSites() []world.Site {
	return s.world.ActiveSites(s.Cell(), s.cfg.World.VisibilityRadius)
}

// TotalCoins returns the number of coins in caches plus the inventory.
func (s *Session) TotalCoins() int {
	return s.world.TotalCoins() + len(s.player.Inventory)
}

// HistoryLen returns how many states can be undone.
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// CellsVisited returns how many distinct cells the player has stood in.
func (s *Session) CellsVisited() int {
	return len(s.visited)
}

// KnownCoins returns the size of the coin identity cache.
func (s *Session) KnownCoins() int {
	return s.registry.Len()
}

// arrive records the current cell and generates around it.
func (s *Session) arrive() []grid.Cell {
	cell := s.Cell()
	s.visited[cell] = struct{}{}
	return s.world.GenerateNeighborhood(cell, s.cfg.World.NeighborhoodRadius, s.cfg.Spawn.Probability)
}

func (s *Session) announceMove(what string, spawned []grid.Cell) {
	s.bus.Notifyf(events.PlayerMoved, "Moved %s, now at cell %s", what, s.Cell())
	for _, cell := range spawned {
		site, _ := s.world.Site(cell)
		s.bus.Notifyf(events.CacheSpawned, "Cache %s appeared with %d coins", cell, len(site.Coins))
	}
}

// checkpoint captures the pre-action state when enabled.
func (s *Session) checkpoint(enabled bool) *memento.Snapshot {
	if !enabled {
		return nil
	}
	snap := s.Snapshot()
	return &snap
}

// commit pushes a pre-action state once the action has succeeded.
func (s *Session) commit(before *memento.Snapshot) {
	if before != nil {
		s.history.Push(*before)
	}
}

// lookup resolves an ID to a coin that already exists in this session.
func (s *Session) lookup(id string) (*coin.Coin, error) {
	cell, serial, err := coin.ParseID(id)
	if err != nil {
		return nil, err
	}
	c, ok := s.registry.Lookup(cell, serial)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not exist", world.ErrNotFound, id)
	}
	return c, nil
}

// failed reports a recoverable error on the bus and returns it.
func (s *Session) failed(err error) error {
	switch {
	case errors.Is(err, world.ErrNotFound):
		s.logger.Debug("action failed", "error", err)
		s.bus.Notify(events.NotFound, err.Error())
	default:
		s.logger.Error("rejected action", "error", err)
	}
	return err
}

// restore makes snap the live state. Snapshots are produced by this session,
// so a malformed key inside one is a bug and panics.
func (s *Session) restore(snap memento.Snapshot) {
	contents := make(map[grid.Cell][]*coin.Coin, len(snap.World))
	for key, coins := range snap.World {
		contents[grid.MustParseKey(key)] = s.resolve(coins)
	}
	decided := make(map[grid.Cell]bool, len(snap.Decided))
	for key, spawned := range snap.Decided {
		decided[grid.MustParseKey(key)] = spawned
	}

	s.world.Restore(contents, decided)
	s.player.Position = snap.Player.Position
	s.player.Inventory = s.resolve(snap.Player.Inventory)
	s.visited[s.Cell()] = struct{}{}
}

func (s *Session) resolve(refs []memento.CoinRef) []*coin.Coin {
	out := make([]*coin.Coin, len(refs))
	for i, r := range refs {
		out[i] = s.registry.GetOrCreate(grid.MustParseKey(r.Cell), r.Serial)
	}
	return out
}

func refs(coins []*coin.Coin) []memento.CoinRef {
	out := make([]memento.CoinRef, len(coins))
	for i, c := range coins {
		out[i] = memento.CoinRef{Cell: c.Cell().Key(), Serial: c.Serial()}
	}
	return out
}
