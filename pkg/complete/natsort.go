package complete

// NaturalLess orders strings so embeddeded numeric runs compare by
// numeric value rather than lexicographically (so "leaf10" sorts after
// "leaf9", not between "leaf1" and "leaf2"). Reimplemented locally in the
// style of the teacher's cmd/cfgcli use of natsort.Sort over completion
// keys (github.com/danos/utils/natsort), which this module does not
// import directly since it is a monorepo-sibling of the teacher rather
// than an independently fetchable dependency (see DESIGN.md).
func NaturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			ia, na := scanNumber(a, i)
			jb, nb := scanNumber(b, j)
			if na != nb {
				return na < nb
			}
			i, j = ia, jb
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanNumber reads the maximal digit run starting at i, returning the
// index just past it and its numeric value.
func scanNumber(s string, i int) (int, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	n := 0
	for k := start; k < i; k++ {
		n = n*10 + int(s[k]-'0')
	}
	return i, n
}
