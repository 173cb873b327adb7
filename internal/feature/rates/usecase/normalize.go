package usecase

import (
	"sort"

	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
)

// Normalize は生の観測値列を正規化します。処理は常に次の順で行われます:
// 欠損行の除去 → 日付昇順の安定ソート → (series_id, date) の重複排除 →
// カタログによるラベル付与。純粋関数であり、同じ入力は常に同じ出力になります。
// 自身の出力に再適用しても結果は変わりません（冪等）。
func Normalize(obs []entity.Observation, catalog domain.Catalog) []entity.Observation {
	// 1. 日付または値が欠損している行を除去
	kept := make([]entity.Observation, 0, len(obs))
	for _, o := range obs {
		if o.Date.IsZero() || o.Value == nil {
			continue
		}
		kept = append(kept, o)
	}

	// 2. 日付昇順の安定ソート（同日付は入力順を維持）
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})

	// 3. (series_id, date) の重複を排除し、最初の行を採用
	// 4. カタログからラベルを付与（未登録のIDはIDをそのまま使用）
	seen := make(map[string]struct{}, len(kept))
	out := make([]entity.Observation, 0, len(kept))
	for _, o := range kept {
		key := o.SeriesID + "|" + o.Date.Format(entity.DateLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		o.Label = catalog.Label(o.SeriesID)
		out = append(out, o)
	}
	return out
}
