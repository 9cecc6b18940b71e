package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

func rec(name string) domain.MoveRecord {
	return domain.MoveRecord{
		Identifier:  domain.NormalizeMoveName(name),
		DisplayName: name,
		Type:        "Normal",
	}
}

func identifiers(records []domain.MoveRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.Identifier
	}
	return ids
}

func TestSet_Filter(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddList("signature_moves", []string{"Spectral Thief"})
	s.AddList("z_moves", []string{"10,000,000 Volt Thunderbolt"})
	s.AddPrefixes("hiddenpower")

	records := []domain.MoveRecord{
		rec("Accelerock"),
		rec("Spectral Thief"),
		rec("10,000,000 Volt Thunderbolt"),
		rec("Hidden Power (Fire)"),
		rec("Absorb"),
	}

	kept, excluded := s.Filter(records)

	assert.Equal(t, []string{"accelerock", "absorb"}, identifiers(kept))
	require.Len(t, excluded, 3)
	assert.Equal(t, "list:signature_moves", excluded[0].Reason)
	assert.Equal(t, "list:z_moves", excluded[1].Reason)
	assert.Equal(t, "prefix:hiddenpower", excluded[2].Reason)
	assert.Equal(t, "hiddenpowerfire", excluded[2].Record.Identifier)
}

func TestSet_Filter_ExactMembership(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddList("removed", []string{"Struggle"})

	// Set membership is exact: neither case variants nor substrings match.
	_, excluded := s.Filter([]domain.MoveRecord{rec("struggle"), rec("Struggle Bug")})
	assert.Empty(t, excluded)

	// Surrounding whitespace in list entries is ignored.
	s.AddList("removed", []string{"  Struggle  "})
	_, excluded = s.Filter([]domain.MoveRecord{rec("Struggle")})
	assert.Len(t, excluded, 1)
}

func TestSet_Filter_PrefixUsesIdentifier(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddPrefixes("Hidden Power")

	assert.Equal(t, []string{"hiddenpower"}, s.Prefixes())

	kept, excluded := s.Filter([]domain.MoveRecord{
		rec("Hidden Power"),
		rec("Hidden Power: Ice"),
		rec("Power Whip"),
	})
	assert.Equal(t, []string{"powerwhip"}, identifiers(kept))
	assert.Len(t, excluded, 2)
}

func TestSet_Filter_Empty(t *testing.T) {
	t.Parallel()

	kept, excluded := New().Filter([]domain.MoveRecord{rec("Absorb")})
	assert.Len(t, kept, 1)
	assert.Empty(t, excluded)

	kept, excluded = Builtin().Filter(nil)
	assert.Empty(t, kept)
	assert.Empty(t, excluded)
}

func TestSet_AddList_Replaces(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddList("removed", []string{"Struggle", "Struggle", ""})
	assert.Equal(t, 1, s.Len())

	s.AddList("removed", []string{"Sketch", "Transform"})
	assert.Equal(t, []string{"removed"}, s.ListNames())
	assert.Equal(t, 2, s.Len())

	_, ok := s.Match(rec("Struggle"))
	assert.False(t, ok, "replaced list should no longer exclude Struggle")
}

func TestSet_Merge(t *testing.T) {
	t.Parallel()

	s := Builtin()
	before := s.Len()

	other := New()
	other.AddList(ListRemoved, []string{"Struggle", "Sketch"})
	other.AddList("custom_bans", []string{"Swords Dance"})
	other.AddPrefixes("hiddenpower")

	s.Merge(other)
	s.Merge(nil)

	assert.Equal(t,
		[]string{ListZMoves, ListMaxMoves, ListSignatureMoves, ListRemoved, "custom_bans"},
		s.ListNames())
	assert.Equal(t, before+2, s.Len())
	assert.Equal(t, []string{"hiddenpower"}, s.Prefixes())
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	s := Builtin()
	tests := []struct {
		name   string
		reason string
	}{
		{"Catastropika", "list:" + ListZMoves},
		{"Max Flare", "list:" + ListMaxMoves},
		{"G-Max Wildfire", "list:" + ListMaxMoves},
		{"Spectral Thief", "list:" + ListSignatureMoves},
		{"Struggle", "list:" + ListRemoved},
	}
	for _, tt := range tests {
		reason, ok := s.Match(rec(tt.name))
		assert.True(t, ok, "%s should be excluded", tt.name)
		assert.Equal(t, tt.reason, reason)
	}

	_, ok := s.Match(rec("Accelerock"))
	assert.False(t, ok)
	assert.Empty(t, s.Prefixes())
}

func TestSet_Unmatched(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddList("signature_moves", []string{"Spectral Thief", "Spectral Theif", "Dark Void"})

	records := []domain.MoveRecord{rec("Spectral Thief"), rec("Accelerock")}
	misses := s.Unmatched(records)

	require.Len(t, misses, 2)

	assert.Equal(t, "Spectral Theif", misses[0].Entry)
	assert.Equal(t, "signature_moves", misses[0].List)
	assert.Equal(t, "Spectral Thief", misses[0].Suggestion)
	assert.GreaterOrEqual(t, misses[0].Score, suggestionThreshold)

	assert.Equal(t, "Dark Void", misses[1].Entry)
	assert.Empty(t, misses[1].Suggestion)
}

func TestSet_Unmatched_AllPresent(t *testing.T) {
	t.Parallel()

	s := New()
	s.AddList("removed", []string{"Struggle"})
	assert.Empty(t, s.Unmatched([]domain.MoveRecord{rec("Struggle")}))
}
