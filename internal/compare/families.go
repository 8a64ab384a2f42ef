package compare

// disjointSet is an explicit index-based union-find. Iterative path halving
// keeps Find deterministic and cycle-free.
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (d *disjointSet) Find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *disjointSet) Union(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra != rb {
		d.parent[rb] = ra
	}
}

// Families clusters the compared contracts transitively: a contract joins the
// first still-open family whose representative matches it at or above the
// threshold. This is not a clique requirement; later members only need to
// match the representative.
func Families(cmp *ContractComparison, threshold float64) []Family {
	if cmp == nil || len(cmp.Contracts) == 0 {
		return []Family{}
	}
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}

	n := len(cmp.Contracts)
	index := make(map[string]int, n)
	for i, c := range cmp.Contracts {
		index[c.Address] = i
	}

	// Pairwise scores keyed by (low index, high index).
	type pair struct{ a, b int }
	score := make(map[pair]float64, len(cmp.Similarities))
	for _, s := range cmp.Similarities {
		i, okA := index[s.ContractA]
		j, okB := index[s.ContractB]
		if !okA || !okB {
			continue
		}
		if i > j {
			i, j = j, i
		}
		score[pair{i, j}] = s.Similarity
	}
	lookup := func(i, j int) float64 {
		if i > j {
			i, j = j, i
		}
		return score[pair{i, j}]
	}

	dsu := newDisjointSet(n)
	var reps []int
	for i := 0; i < n; i++ {
		joined := false
		for _, r := range reps {
			if lookup(r, i) >= threshold {
				dsu.Union(r, i)
				joined = true
				break
			}
		}
		if !joined {
			reps = append(reps, i)
		}
	}

	families := make([]Family, 0, len(reps))
	for _, r := range reps {
		fam := Family{Representative: cmp.Contracts[r].Address}
		root := dsu.Find(r)
		for i := 0; i < n; i++ {
			if dsu.Find(i) == root {
				fam.Members = append(fam.Members, cmp.Contracts[i].Address)
			}
		}
		families = append(families, fam)
	}
	return families
}
