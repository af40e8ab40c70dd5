package align

// MergeProtoGaps collapses one-to-many sound correspondences in alm.
//
// languages names the rows of alm; reference marks the row(s) whose
// material survives the merge (typically the held-out target language).
// A column is mergeable when every non-reference row holds the gap.
// Consecutive mergeable columns fold into the nearest preceding column:
// non-gap content joins that row's accumulated cell, separated by "."
// when the cell is non-empty. A leading run of mergeable columns starts
// a fresh cell instead. Cells left empty become the gap.
//
// When no column is mergeable the input is returned unchanged; applying
// the merge to its own output is always a no-op.
func MergeProtoGaps(alm [][]string, languages []string, reference string, gap string) [][]string {
	if len(alm) == 0 || len(alm[0]) == 0 {
		return alm
	}
	width := len(alm[0])

	mergeable := make([]bool, width)
	any := false
	for i := 0; i < width; i++ {
		rest := 0
		allGap := true
		for j, lang := range languages {
			if lang == reference {
				continue
			}
			rest++
			if alm[j][i] != gap {
				allGap = false
				break
			}
		}
		if rest > 0 && allGap {
			mergeable[i] = true
			any = true
		}
	}
	if !any {
		return alm
	}

	out := make([][]string, len(alm))
	for j := range out {
		out[j] = make([]string, 0, width)
	}
	for i := 0; i < width; i++ {
		switch {
		case mergeable[i] && len(out[0]) > 0:
			for j := range alm {
				cell := alm[j][i]
				if cell == gap {
					continue
				}
				last := len(out[j]) - 1
				if out[j][last] == "" {
					out[j][last] = cell
				} else {
					out[j][last] += "." + cell
				}
			}
		case mergeable[i]:
			// Leading run: open a fresh cell.
			for j := range alm {
				cell := alm[j][i]
				if cell == gap {
					cell = ""
				}
				out[j] = append(out[j], cell)
			}
		default:
			for j := range alm {
				out[j] = append(out[j], alm[j][i])
			}
		}
	}
	for j := range out {
		for i, cell := range out[j] {
			if cell == "" {
				out[j][i] = gap
			}
		}
	}

	return out
}
