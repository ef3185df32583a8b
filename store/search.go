package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jonathanmnovak/neo-capstone/model"
)

func buildSearchKeys(neos []*model.NearEarthObject) []string {
	keys := make([]string, len(neos))
	for i, neo := range neos {
		keys[i] = neo.Fullname()
	}
	return keys
}

// SearchNEOs はあいまい検索でNEOを探します。
// 検索語は "仮符号 (名前)" の部分列として大文字小文字を区別せずに照合され、
// 結果は編集距離、次に読み込み順で並びます。limitが0以下の場合は全件を返します。
func (d *Database) SearchNEOs(term string, limit int) []*model.NearEarthObject {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(term, d.searchKeys)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]*model.NearEarthObject, len(ranks))
	for i, r := range ranks {
		out[i] = d.neos[r.OriginalIndex]
	}
	return out
}
