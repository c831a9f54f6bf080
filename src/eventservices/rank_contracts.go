package eventservices

import (
	"sort"

	"github.com/jiaming2012/top-options-contracts/src/eventmodels"
)

// RankContracts sorts records by volume, then open interest, then premium
// paid, all descending, and returns at most topN of them. The input slice
// is not mutated. A non-positive topN yields an empty result.
func RankContracts(records []*eventmodels.OptionRecord, topN int) eventmodels.OptionRecords {
	ranked := make(eventmodels.OptionRecords, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Volume != ranked[j].Volume {
			return ranked[i].Volume > ranked[j].Volume
		}

		if ranked[i].OpenInterest != ranked[j].OpenInterest {
			return ranked[i].OpenInterest > ranked[j].OpenInterest
		}

		return ranked[i].PremiumPaid > ranked[j].PremiumPaid
	})

	if topN <= 0 {
		return eventmodels.OptionRecords{}
	}

	if topN < len(ranked) {
		ranked = ranked[:topN]
	}

	return ranked
}
