/*
Copyright 2026 Seaglass Design. All rights reserved.
Use of this source code is governed by the Apache-2.0
license that can be found in the LICENSE file.
*/

package metadata

import (
	"sort"
	"strings"

	"github.com/seaglass-design/themegen/token"
)

// Transform rewrites every occurrence of a raw token name inside the
// role and alias fields of entries into its canonical form, wrapped in
// a code span ("interactive01" becomes "`$interactive-01`"). Entries
// are mutated in place.
//
// Matching is a tokenizing replace over the finite vocabulary of raw
// token names rather than a composed pattern: longest name wins, ties
// fall to vocabulary order, and a name never matches inside a larger
// word. Already rewritten names are left alone, so applying Transform
// twice yields the same result as applying it once.
func Transform(entries []*token.Meta, vocabulary []string) {
	r := newRewriter(vocabulary)
	for _, entry := range entries {
		for i, line := range entry.Role {
			entry.Role[i] = r.rewrite(line)
		}
		if entry.Alias != "" {
			entry.Alias = r.rewrite(entry.Alias)
		}
	}
}

type vocabWord struct {
	raw         string
	replacement string
}

type rewriter struct {
	words []vocabWord
}

func newRewriter(vocabulary []string) *rewriter {
	words := make([]vocabWord, len(vocabulary))
	for i, raw := range vocabulary {
		words[i] = vocabWord{
			raw:         raw,
			replacement: "`$" + token.FormatName(raw) + "`",
		}
	}
	// Longest first so "buttonTertiary" is never half-matched by "button".
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i].raw) > len(words[j].raw)
	})
	return &rewriter{words: words}
}

func (r *rewriter) rewrite(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		if w, ok := r.matchAt(s, i); ok {
			sb.WriteString(w.replacement)
			i += len(w.raw)
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

// matchAt reports the vocabulary word starting at offset i, if any.
// A match must sit on word boundaries, and text already in `$...` form
// is skipped to keep the rewrite idempotent.
func (r *rewriter) matchAt(s string, i int) (vocabWord, bool) {
	if i > 0 && (s[i-1] == '$' || s[i-1] == '`' || isWordChar(s[i-1])) {
		return vocabWord{}, false
	}
	for _, w := range r.words {
		if !strings.HasPrefix(s[i:], w.raw) {
			continue
		}
		if end := i + len(w.raw); end < len(s) && isWordChar(s[end]) {
			continue
		}
		return w, true
	}
	return vocabWord{}, false
}

func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		return true
	}
	return false
}
