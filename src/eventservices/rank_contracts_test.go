package eventservices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/top-options-contracts/src/eventmodels"
)

func newRecord(symbol string, volume int, openInterest int, premiumPaid float64) *eventmodels.OptionRecord {
	return &eventmodels.OptionRecord{
		ContractSymbol: eventmodels.OptionSymbol(symbol),
		OptionType:     eventmodels.OptionTypeCall,
		Expiry:         eventmodels.ExpirationDate("2026-01-16"),
		Volume:         volume,
		OpenInterest:   openInterest,
		PremiumPaid:    premiumPaid,
	}
}

func TestRankContracts(t *testing.T) {
	t.Run("sorts by volume, then open interest, then premium paid", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 100, 500, 1000),
			newRecord("B", 300, 100, 2000),
			newRecord("C", 300, 400, 500),
			newRecord("D", 300, 400, 900),
		}

		ranked := RankContracts(records, 10)

		assert.Len(t, ranked, 4)
		assert.Equal(t, eventmodels.OptionSymbol("B"), ranked[0].ContractSymbol)
		assert.Equal(t, eventmodels.OptionSymbol("D"), ranked[1].ContractSymbol)
		assert.Equal(t, eventmodels.OptionSymbol("C"), ranked[2].ContractSymbol)
		assert.Equal(t, eventmodels.OptionSymbol("A"), ranked[3].ContractSymbol)
	})

	t.Run("open interest breaks a volume tie", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 500, 1000, 5000),
			newRecord("B", 500, 2000, 1000),
		}

		ranked := RankContracts(records, 10)

		assert.Len(t, ranked, 2)
		assert.Equal(t, eventmodels.OptionSymbol("B"), ranked[0].ContractSymbol)
		assert.Equal(t, eventmodels.OptionSymbol("A"), ranked[1].ContractSymbol)
	})

	t.Run("returned keys are non-increasing lexicographically", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 10, 5, 100),
			newRecord("B", 10, 5, 200),
			newRecord("C", 50, 1, 10),
			newRecord("D", 10, 9, 50),
			newRecord("E", 0, 0, 0),
		}

		ranked := RankContracts(records, 10)

		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			if prev.Volume == cur.Volume {
				if prev.OpenInterest == cur.OpenInterest {
					assert.GreaterOrEqual(t, prev.PremiumPaid, cur.PremiumPaid)
				} else {
					assert.Greater(t, prev.OpenInterest, cur.OpenInterest)
				}
			} else {
				assert.Greater(t, prev.Volume, cur.Volume)
			}
		}
	})

	t.Run("returns a subset of the input by identity", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 1, 1, 1),
			newRecord("B", 2, 2, 2),
			newRecord("C", 3, 3, 3),
		}

		ranked := RankContracts(records, 2)

		assert.Len(t, ranked, 2)
		for _, r := range ranked {
			assert.Contains(t, records, r)
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 1, 1, 1),
			newRecord("B", 2, 2, 2),
		}

		RankContracts(records, 10)

		assert.Equal(t, eventmodels.OptionSymbol("A"), records[0].ContractSymbol)
		assert.Equal(t, eventmodels.OptionSymbol("B"), records[1].ContractSymbol)
	})

	t.Run("is idempotent", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 10, 5, 100),
			newRecord("B", 50, 1, 10),
			newRecord("C", 10, 9, 50),
		}

		first := RankContracts(records, 10)
		second := RankContracts(records, 10)

		assert.Equal(t, first, second)
	})

	t.Run("empty input returns empty output", func(t *testing.T) {
		ranked := RankContracts(nil, 10)

		assert.Empty(t, ranked)
	})

	t.Run("topN of zero returns empty output", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 1, 1, 1),
			newRecord("B", 2, 2, 2),
		}

		assert.Empty(t, RankContracts(records, 0))
		assert.Empty(t, RankContracts(records, -5))
	})

	t.Run("topN larger than input returns all records", func(t *testing.T) {
		records := []*eventmodels.OptionRecord{
			newRecord("A", 1, 1, 1),
			newRecord("B", 2, 2, 2),
		}

		ranked := RankContracts(records, 100)

		assert.Len(t, ranked, 2)
	})
}
