package prompt

import "testing"

func TestAggregateKeywordsRanksByFrequency(t *testing.T) {
	captions := []string{
		"a cat, realistic, photograph",
		"a cat, realistic, photo",
	}

	ranked := AggregateKeywords(captions)
	if len(ranked) < 2 {
		t.Fatalf("expected at least 2 keywords, got %d", len(ranked))
	}

	top := map[string]int{ranked[0].Token: ranked[0].Count, ranked[1].Token: ranked[1].Count}
	if top["cat"] != 2 || top["realistic"] != 2 {
		t.Fatalf("expected cat(2) and realistic(2) on top, got %v", ranked[:2])
	}
	for _, kw := range ranked[2:] {
		if kw.Count >= 2 {
			t.Errorf("singleton token %q ranked with count %d", kw.Token, kw.Count)
		}
	}
}

func TestAggregateKeywordsFilters(t *testing.T) {
	ranked := AggregateKeywords([]string{"the cat is on an old mat"})

	for _, kw := range ranked {
		switch kw.Token {
		case "the", "is", "on", "an":
			t.Errorf("stop word %q survived", kw.Token)
		}
		if len(kw.Token) <= 2 {
			t.Errorf("short token %q survived", kw.Token)
		}
	}
}

func TestAggregateKeywordsCountsOrderInsensitive(t *testing.T) {
	a := []string{"a dog, beach", "a dog, sunset", "waves crashing"}
	b := []string{"waves crashing", "a dog, sunset", "a dog, beach"}

	countsA := make(map[string]int)
	for _, kw := range AggregateKeywords(a) {
		countsA[kw.Token] = kw.Count
	}
	countsB := make(map[string]int)
	for _, kw := range AggregateKeywords(b) {
		countsB[kw.Token] = kw.Count
	}

	if len(countsA) != len(countsB) {
		t.Fatalf("tables differ in size: %d vs %d", len(countsA), len(countsB))
	}
	for token, count := range countsA {
		if countsB[token] != count {
			t.Errorf("token %q: %d vs %d", token, count, countsB[token])
		}
	}
}

func TestAggregateKeywordsTieBreakFirstSeen(t *testing.T) {
	ranked := AggregateKeywords([]string{"zebra apple zebra apple banana cherry"})

	if ranked[0].Token != "zebra" || ranked[1].Token != "apple" {
		t.Fatalf("count ties must keep first-seen order, got %v", ranked)
	}
	if ranked[2].Token != "banana" || ranked[3].Token != "cherry" {
		t.Fatalf("singleton ties must keep first-seen order, got %v", ranked)
	}
}

func TestAggregateStylesTakesTrailingClauses(t *testing.T) {
	captions := []string{
		"a cat, sitting, windowsill, oil painting, muted colors, canvas texture",
		"a cat, sleeping, oil painting, muted colors, film grain",
	}

	ranked := AggregateStyles(captions)
	if len(ranked) == 0 {
		t.Fatal("expected style tags")
	}
	if ranked[0].Tag != "oil painting" || ranked[0].Count != 2 {
		t.Fatalf("expected 'oil painting'(2) first, got %+v", ranked[0])
	}

	for _, tag := range ranked {
		if tag.Tag == "a cat" {
			t.Error("leading clause must not become a style tag")
		}
	}
}

func TestAggregateStylesSkipsShortCaptions(t *testing.T) {
	if got := AggregateStyles([]string{"a cat, sitting, windowsill"}); len(got) != 0 {
		t.Fatalf("captions with three or fewer clauses must not contribute, got %v", got)
	}
}

func TestAggregateStylesDropsNonPrintable(t *testing.T) {
	ranked := AggregateStyles([]string{"a cat, b, c, good tag, bad\x01tag, fine"})
	for _, tag := range ranked {
		if tag.Tag == "bad\x01tag" {
			t.Fatal("non-printable tag survived")
		}
	}
}
