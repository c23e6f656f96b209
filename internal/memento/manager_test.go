package memento

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/geocoin/internal/grid"
)

func sampleState() (PlayerData, WorldData, map[string]bool) {
	player := PlayerData{
		Position:  grid.LatLng{Lat: 1.5, Lng: -2.25},
		Inventory: []CoinRef{{Cell: "3:-2", Serial: 1}},
	}
	world := WorldData{
		"0:0": {{Cell: "0:0", Serial: 0}, {Cell: "0:0", Serial: 2}},
		"4:4": {},
	}
	decided := map[string]bool{"0:0": true, "4:4": true, "1:1": false}
	return player, world, decided
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager()
	player, world, decided := sampleState()
	m.Save(player, world, decided)

	s, ok := m.Load()
	if !ok {
		t.Fatal("Load() returned no snapshot")
	}
	if !reflect.DeepEqual(s.Player, player) {
		t.Errorf("player = %+v, expected %+v", s.Player, player)
	}
	if !reflect.DeepEqual(s.World, world) {
		t.Errorf("world = %+v, expected %+v", s.World, world)
	}
	if !reflect.DeepEqual(s.Decided, decided) {
		t.Errorf("decided = %+v, expected %+v", s.Decided, decided)
	}
}

func TestSaveDoesNotAlias(t *testing.T) {
	m := NewManager()
	player, world, decided := sampleState()
	m.Save(player, world, decided)

	// Mutate the caller's state after saving.
	player.Inventory[0].Serial = 99
	world["0:0"][0].Serial = 99
	world["9:9"] = []CoinRef{{Cell: "9:9"}}
	decided["0:0"] = false

	s, _ := m.Load()
	if s.Player.Inventory[0].Serial != 1 {
		t.Error("inventory mutation leaked into snapshot")
	}
	if s.World["0:0"][0].Serial != 0 {
		t.Error("site mutation leaked into snapshot")
	}
	if _, ok := s.World["9:9"]; ok {
		t.Error("new site leaked into snapshot")
	}
	if !s.Decided["0:0"] {
		t.Error("decision mutation leaked into snapshot")
	}
}

func TestLoadIsLIFOAndDestructive(t *testing.T) {
	m := NewManager()
	for i := 0; i < 3; i++ {
		m.Save(PlayerData{Position: grid.LatLng{Lat: float64(i)}}, nil, nil)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", m.Len())
	}

	for i := 2; i >= 0; i-- {
		s, ok := m.Load()
		if !ok {
			t.Fatalf("Load() #%d returned no snapshot", i)
		}
		if s.Player.Position.Lat != float64(i) {
			t.Errorf("Load() lat = %v, expected %d", s.Player.Position.Lat, i)
		}
	}

	if _, ok := m.Load(); ok {
		t.Error("Load() on empty stack should report no snapshot")
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	player, world, decided := sampleState()
	m.Save(player, world, decided)
	m.Save(player, world, decided)
	m.Reset()

	if m.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", m.Len())
	}
	if _, ok := m.Load(); ok {
		t.Error("Load() after Reset should report no snapshot")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	m := NewManager(WithLimit(2))
	for i := 0; i < 5; i++ {
		m.Save(PlayerData{Position: grid.LatLng{Lat: float64(i)}}, nil, nil)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", m.Len())
	}

	s, _ := m.Load()
	if s.Player.Position.Lat != 4 {
		t.Errorf("newest snapshot lat = %v, expected 4", s.Player.Position.Lat)
	}
	s, _ = m.Load()
	if s.Player.Position.Lat != 3 {
		t.Errorf("second snapshot lat = %v, expected 3", s.Player.Position.Lat)
	}
}

func TestWorldDataCoinCount(t *testing.T) {
	_, world, _ := sampleState()
	if world.CoinCount() != 2 {
		t.Errorf("CoinCount() = %d, expected 2", world.CoinCount())
	}
	if WorldData(nil).Clone() != nil {
		t.Error("Clone of nil world should be nil")
	}
}
