package corruption

import (
	"testing"

	"github.com/qingchang/grimoire-deduce/internal/roles"
	"github.com/qingchang/grimoire-deduce/internal/world"
)

func TestPookaCorruptsBothEligibleNeighbors(t *testing.T) {
	w := world.World{
		TrueRole:     []roles.Role{roles.Confessor, roles.Pooka, roles.Confessor},
		WretchRole:   []roles.Role{roles.Confessor, roles.Pooka, roles.Confessor},
		DisguiseRole: []roles.Role{roles.Confessor, roles.Pooka, roles.Confessor},
	}
	configs := Enumerate(w)
	found := false
	for _, cfg := range configs {
		if cfg.Corrupted.Has(0) && cfg.Corrupted.Has(2) {
			found = true
		}
	}
	if !found {
		t.Error("expected a config where Pooka corrupts both Villager-group neighbors")
	}
}

func TestPoisonerSkipsWhenNoEligibleNeighbor(t *testing.T) {
	w := world.World{
		TrueRole:     []roles.Role{roles.Poisoner, roles.Minion},
		WretchRole:   []roles.Role{roles.Poisoner, roles.Minion},
		DisguiseRole: []roles.Role{roles.Confessor, roles.Minion},
	}
	configs := Enumerate(w)
	if len(configs) != 1 {
		t.Fatalf("expected exactly one config (no eligible Villager neighbor), got %d", len(configs))
	}
	if configs[0].Corrupted.Len() != 0 {
		t.Error("Poisoner with no eligible neighbor should corrupt nobody")
	}
}

func TestAlchemistClearsNeighboringCorruption(t *testing.T) {
	w := world.World{
		TrueRole:     []roles.Role{roles.Poisoner, roles.Confessor, roles.Alchemist},
		WretchRole:   []roles.Role{roles.Poisoner, roles.Confessor, roles.Alchemist},
		DisguiseRole: []roles.Role{roles.Poisoner, roles.Confessor, roles.Alchemist},
	}
	configs := Enumerate(w)
	foundCleared := false
	for _, cfg := range configs {
		if cfg.Cleared[2] > 0 && !cfg.Corrupted.Has(1) {
			foundCleared = true
		}
	}
	if !foundCleared {
		t.Error("expected the Alchemist to clear its poisoned neighbor in at least one config")
	}
}

func TestPlagueDoctorChoosesAnyVillagerSeat(t *testing.T) {
	w := world.World{
		TrueRole:     []roles.Role{roles.PlagueDoctor, roles.Confessor, roles.Confessor, roles.Minion},
		WretchRole:   []roles.Role{roles.PlagueDoctor, roles.Confessor, roles.Confessor, roles.Minion},
		DisguiseRole: []roles.Role{roles.PlagueDoctor, roles.Confessor, roles.Confessor, roles.Minion},
	}
	configs := Enumerate(w)
	seen := map[int]bool{}
	for _, cfg := range configs {
		for _, s := range cfg.Corrupted.Slice() {
			seen[s] = true
		}
	}
	if !seen[1] || !seen[2] {
		t.Errorf("expected PlagueDoctor to be able to target either Villager seat, saw %v", seen)
	}
}
