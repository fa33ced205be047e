package compare

import (
	"unicode/utf8"

	"github.com/clauseguard-server/internal/domain"
)

const matrixDetailLimit = 120

// buildMatrix produces one row per key point category present in any
// document, in the canonical category order, with one cell per document
// in rank order.
func buildMatrix(rankings []DocRanking) []CategoryRow {
	icons := make(map[domain.KeyPointCategory]string)
	for _, r := range rankings {
		for _, kp := range r.Result.KeyPoints {
			if _, ok := icons[kp.Category]; !ok {
				icons[kp.Category] = kp.Icon
			}
		}
	}

	rows := []CategoryRow{}
	for _, cat := range domain.KeyPointCategoryOrder {
		icon, ok := icons[cat]
		if !ok {
			continue
		}
		row := CategoryRow{Category: cat, Icon: icon}
		for _, r := range rankings {
			row.Cells = append(row.Cells, cellFor(r.Result, cat))
		}
		rows = append(rows, row)
	}
	return rows
}

func cellFor(result *domain.AnalysisResult, cat domain.KeyPointCategory) MatrixCell {
	for _, kp := range result.KeyPoints {
		if kp.Category != cat {
			continue
		}
		detail := kp.Detail
		if len(detail) > matrixDetailLimit {
			cut := matrixDetailLimit
			for cut > 0 && !utf8.RuneStart(detail[cut]) {
				cut--
			}
			detail = detail[:cut]
		}
		return MatrixCell{Present: true, WatchOut: kp.WatchOut, Detail: detail}
	}
	return MatrixCell{Detail: "Not mentioned"}
}
