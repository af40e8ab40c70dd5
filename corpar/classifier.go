// Package corpar implements the correspondence-pattern graph classifier:
// an analogical learner that connects compatible sound-correspondence
// patterns, derives consensus rules from the maximal cliques of the
// resulting graph, and predicts unseen patterns by exact lookup with a
// graceful fallback search.
package corpar

import "fmt"

// Classifier learns consensus correspondence rules from integer-encoded
// (pattern, target) pairs and predicts targets for novel patterns.
//
// The fitted model is immutable; the only state mutated by Predict is
// the prediction cache, which is concurrency-safe. Construct with New,
// train with Fit, query with Predict.
type Classifier struct {
	opts  Options
	cache *Cache
	model model
}

// model is the immutable outcome of Fit.
type model struct {
	width       int
	rules       []Rule                        // consensus rules, derivation order
	predictions map[string]int                // source pattern → target
	fallback    map[fallbackKey][]fbCandidate // (position, value) → consensus patterns
}

// fallbackKey indexes consensus patterns by one non-missing position.
type fallbackKey struct {
	pos, val int
}

// fbCandidate is one consensus source pattern reachable from the index.
type fbCandidate struct {
	pattern []int
	key     string
}

// New creates an unfitted Classifier. Invalid options surface as
// ErrOptionViolation from Fit.
func New(opts ...Option) *Classifier {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Classifier{opts: o, cache: o.Cache}
	if c.cache == nil {
		c.cache = NewCache()
	}

	return c
}

// Fit trains the classifier on parallel rows and targets.
//
// Identical (pattern, target) tuples are grouped and weighted by count;
// tuple pairs agreeing on every shared non-missing position (with at
// least Threshold agreements) are connected; every maximal clique of
// that graph yields a consensus rule. Fewer than two distinct tuples
// yield an empty model, not an error — predictions then always resolve
// to the missing sentinel.
//
// Fit is deterministic: identical ordered input produces an identical
// model. Refitting replaces the model and clears the prediction cache.
func (c *Classifier) Fit(rows [][]int, targets []int) error {
	if c.opts.err != nil {
		return c.opts.err
	}
	if len(rows) != len(targets) {
		return fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, len(rows), len(targets))
	}

	c.cache.reset()
	c.model = model{
		predictions: make(map[string]int),
		fallback:    make(map[fallbackKey][]fbCandidate),
	}
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrRaggedPattern, i, len(row), width)
		}
	}
	c.model.width = width

	// Group identical tuples; node index = first-occurrence order.
	var nodes []node
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		tuple := make([]int, width+1)
		copy(tuple, row)
		tuple[width] = targets[i]
		k := patternKey(tuple)
		if j, ok := index[k]; ok {
			nodes[j].weight++
		} else {
			index[k] = len(nodes)
			nodes = append(nodes, node{tuple: tuple, weight: 1})
		}
	}
	if len(nodes) < 2 {
		return nil
	}

	// Compatibility edges: zero mismatches, enough agreement.
	nb := make([]map[int]struct{}, len(nodes))
	for i := range nb {
		nb[i] = make(map[int]struct{})
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			match, mismatch := compatible(nodes[i].tuple, nodes[j].tuple, c.opts.Missing)
			if mismatch == 0 && match >= c.opts.Threshold {
				nb[i][j] = struct{}{}
				nb[j][i] = struct{}{}
			}
		}
	}

	cliques, err := maximalCliques(len(nodes), nb, c.opts.MaxCliques)
	if err != nil {
		return err
	}

	// Derive consensus rules and observed-pattern back-references.
	type targetClaim struct {
		target, weight int
	}
	var ruleOrder []string
	ruleSources := make(map[string][]int)
	ruleClaims := make(map[string][]targetClaim)
	var lookupOrder []string
	lookupClaims := make(map[string]map[string]int)

	for _, clique := range cliques {
		cons := consensusTuple(nodes, clique, width, c.opts.Missing)
		src, tgt := cons[:width], cons[width]
		k := patternKey(src)
		if _, ok := ruleClaims[k]; !ok {
			ruleOrder = append(ruleOrder, k)
			ruleSources[k] = src
		}
		claims := ruleClaims[k]
		claimed := false
		for ci := range claims {
			if claims[ci].target == tgt {
				if len(clique) > claims[ci].weight {
					claims[ci].weight = len(clique)
				}
				claimed = true
				break
			}
		}
		if !claimed {
			claims = append(claims, targetClaim{target: tgt, weight: len(clique)})
		}
		ruleClaims[k] = claims

		for _, vi := range clique {
			obsKey := patternKey(nodes[vi].tuple[:width])
			back, ok := lookupClaims[obsKey]
			if !ok {
				back = make(map[string]int)
				lookupClaims[obsKey] = back
				lookupOrder = append(lookupOrder, obsKey)
			}
			back[k] += len(clique)
		}
	}

	// Resolve rule targets: heavier claim wins, then smaller target.
	for _, k := range ruleOrder {
		best := ruleClaims[k][0]
		for _, cl := range ruleClaims[k][1:] {
			if cl.weight > best.weight || (cl.weight == best.weight && cl.target < best.target) {
				best = cl
			}
		}
		c.model.predictions[k] = best.target
		c.model.rules = append(c.model.rules, Rule{
			Source: ruleSources[k],
			Target: best.target,
			Weight: best.weight,
		})
	}

	// Resolve observed patterns to their best consensus: heavier claim
	// wins, then the lexicographically smaller consensus pattern.
	for _, obsKey := range lookupOrder {
		back := lookupClaims[obsKey]
		bestKey, bestW := "", -1
		for _, consKey := range ruleOrder {
			w, ok := back[consKey]
			if !ok {
				continue
			}
			if w > bestW || (w == bestW && lessPattern(ruleSources[consKey], ruleSources[bestKey])) {
				bestKey, bestW = consKey, w
			}
		}
		c.model.predictions[obsKey] = c.model.predictions[bestKey]
	}

	// Fallback index over the consensus patterns.
	for _, k := range ruleOrder {
		src := ruleSources[k]
		for i, v := range src {
			if v == c.opts.Missing {
				continue
			}
			fk := fallbackKey{pos: i, val: v}
			c.model.fallback[fk] = append(c.model.fallback[fk], fbCandidate{pattern: src, key: k})
		}
	}

	return nil
}

// Predict returns one target per query pattern: an exact hit in the
// prediction table, a fallback-search result (cached for next time), or
// the missing sentinel when no compatible rule exists. Predict never
// fails; an unfitted or empty classifier predicts the missing sentinel
// for every row.
func (c *Classifier) Predict(rows [][]int) []int {
	out := make([]int, len(rows))
	for r, row := range rows {
		out[r] = c.predictOne(row)
	}

	return out
}

// predictOne resolves a single query pattern.
func (c *Classifier) predictOne(row []int) int {
	k := patternKey(row)
	if t, ok := c.model.predictions[k]; ok {
		return t
	}
	if t, ok := c.cache.get(k); ok {
		return t
	}

	missing := c.opts.Missing
	visited := make(map[string]struct{})
	bestKey := ""
	bestExact, found := false, false
	bestScore := 0
	for i, v := range row {
		if v == missing {
			continue
		}
		for _, cand := range c.model.fallback[fallbackKey{pos: i, val: v}] {
			if _, seen := visited[cand.key]; seen {
				continue
			}
			visited[cand.key] = struct{}{}
			match, mismatch := compatible(row, cand.pattern, missing)
			var exact bool
			var score int
			switch {
			case mismatch == 0 && match > 0:
				exact, score = true, match
			case match-mismatch != 0:
				exact, score = false, match-mismatch
			default:
				continue
			}
			// Only a strictly better candidate replaces the incumbent,
			// so ties keep the earliest-discovered pattern.
			if !found || betterCandidate(exact, score, bestExact, bestScore) {
				found = true
				bestKey, bestExact, bestScore = cand.key, exact, score
			}
		}
	}
	if !found {
		return missing
	}
	t := c.model.predictions[bestKey]
	c.cache.put(k, t)

	return t
}

// betterCandidate orders fallback candidates: zero-mismatch beats
// mismatching, then the larger score wins.
func betterCandidate(exact bool, score int, bestExact bool, bestScore int) bool {
	if exact != bestExact {
		return exact
	}

	return score > bestScore
}

// consensusTuple merges clique members position by position: the first
// non-missing value in ascending node order, else the missing sentinel.
func consensusTuple(nodes []node, clique []int, width, missing int) []int {
	cons := make([]int, width+1)
	for i := range cons {
		cons[i] = missing
		for _, vi := range clique {
			if v := nodes[vi].tuple[i]; v != missing {
				cons[i] = v
				break
			}
		}
	}

	return cons
}

// Rules returns the fitted consensus rules in derivation order.
// The returned slice is a copy; rule patterns are shared and must not
// be mutated.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.model.rules))
	copy(out, c.model.rules)

	return out
}

// PredictionTable returns a copy of the resolved source-pattern → target
// table (consensus and observed patterns, fallback cache excluded).
func (c *Classifier) PredictionTable() map[string]int {
	out := make(map[string]int, len(c.model.predictions))
	for k, v := range c.model.predictions {
		out[k] = v
	}

	return out
}

// Compatibility counts agreeing and disagreeing positions of two
// patterns, skipping positions where either side holds missing. It is
// symmetric in its pattern arguments.
func Compatibility(a, b []int, missing int) (match, mismatch int) {
	return compatible(a, b, missing)
}
