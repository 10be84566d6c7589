package advice

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanFragment strips surrounding whitespace and the markdown code fences
// models sometimes wrap fragments in despite the prompt contract.
func CleanFragment(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func parseFragment(fragment string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return doc, nil
}

// ValidateFoodExercise checks the food/exercise contract: a self-contained
// <section> fragment holding two headed lists of exactly five items each.
func ValidateFoodExercise(fragment string) error {
	if !strings.HasPrefix(fragment, "<section") || !strings.HasSuffix(fragment, "</section>") {
		return fmt.Errorf("fragment is not a self-contained <section>")
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return err
	}

	if n := doc.Find("h3").Length(); n != 2 {
		return fmt.Errorf("expected 2 headed sub-sections, found %d", n)
	}

	lists := doc.Find("ul")
	if lists.Length() != 2 {
		return fmt.Errorf("expected 2 lists, found %d", lists.Length())
	}

	var itemErr error
	lists.EachWithBreak(func(i int, ul *goquery.Selection) bool {
		if n := ul.Find("li").Length(); n != 5 {
			itemErr = fmt.Errorf("list %d has %d items, want 5", i, n)
			return false
		}
		return true
	})
	return itemErr
}

// ValidateRoutine checks the routine contract: a single <table> fragment
// with a caption and two-column time/activity rows.
func ValidateRoutine(fragment string) error {
	if !strings.HasPrefix(fragment, "<table") || !strings.HasSuffix(fragment, "</table>") {
		return fmt.Errorf("fragment is not a self-contained <table>")
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return err
	}

	if doc.Find("table").Length() != 1 {
		return fmt.Errorf("expected exactly one table")
	}
	if doc.Find("table caption").Length() != 1 {
		return fmt.Errorf("table is missing its caption")
	}
	if n := doc.Find("thead th").Length(); n != 2 {
		return fmt.Errorf("expected 2 header columns, found %d", n)
	}

	rows := doc.Find("tbody tr")
	if rows.Length() == 0 {
		return fmt.Errorf("routine table has no rows")
	}

	var rowErr error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if n := tr.Find("td").Length(); n != 2 {
			rowErr = fmt.Errorf("row %d has %d cells, want 2", i, n)
			return false
		}
		return true
	})
	return rowErr
}

// ValidateKeyFacts checks the key facts contract: a bare <ul> of exactly
// ten items, each emphasizing exactly one key phrase.
func ValidateKeyFacts(fragment string) error {
	if !strings.HasPrefix(fragment, "<ul") || !strings.HasSuffix(fragment, "</ul>") {
		return fmt.Errorf("fragment is not a self-contained <ul>")
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return err
	}

	if doc.Find("ul").Length() != 1 {
		return fmt.Errorf("expected exactly one list")
	}

	items := doc.Find("ul > li")
	if items.Length() != 10 {
		return fmt.Errorf("expected 10 items, found %d", items.Length())
	}

	var itemErr error
	items.EachWithBreak(func(i int, li *goquery.Selection) bool {
		if n := li.Find("strong").Length(); n != 1 {
			itemErr = fmt.Errorf("item %d has %d emphasized phrases, want 1", i, n)
			return false
		}
		return true
	})
	return itemErr
}
