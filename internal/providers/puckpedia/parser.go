package puckpedia

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/nhl-stats-service/internal/domain/injuries"
	"github.com/preston-bernstein/nhl-stats-service/internal/timeutil"
)

const (
	playerLinkSelector   = `a[href*="/player/"]`
	expectedReturnMarker = "Expected Return"
	// maxAncestorDepth bounds how far above a player link the details are looked for.
	maxAncestorDepth = 3
)

var (
	statusPattern = regexp.MustCompile(`(?i)\b(OUT|IR-LT|IR-NR|LTIR|IR|SUSPENSION)\s*\|\s*([A-Z]+(?:[ /-][A-Z]+)*)\b`)
	returnPattern = regexp.MustCompile(`(?i)Expected Return:\s*([A-Za-z]+\s+\d+,\s+\d+)`)
)

// parseInjuryPage extracts injuries from a team injuries page. Each player link is
// matched against the text of its closest ancestor that carries injury details
// without spanning another player.
func parseInjuryPage(r io.Reader, now time.Time) ([]injuries.Injury, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: parse injuries page: %w", providerName, err)
	}

	out := make([]injuries.Injury, 0)
	seen := make(map[string]struct{})
	doc.Find(playerLinkSelector).Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}

		injury, ok := parseInjuryText(name, contextText(link), now)
		if !ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, injury)
	})
	return out, nil
}

func contextText(link *goquery.Selection) string {
	href, _ := link.Attr("href")
	text := ""
	node := link.Parent()
	for i := 0; i < maxAncestorDepth && node.Length() > 0; i++ {
		if linksOtherPlayer(node, href) {
			break
		}
		text = nodeText(node)
		if strings.Contains(text, expectedReturnMarker) || statusPattern.MatchString(text) {
			break
		}
		node = node.Parent()
	}
	return text
}

// nodeText joins the text nodes under sel with single spaces, so adjacent
// table cells do not run together.
func nodeText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			if goquery.NodeName(child) == "#text" {
				b.WriteString(child.Text())
				b.WriteByte(' ')
				return
			}
			walk(child)
		})
	}
	walk(sel)
	return strings.Join(strings.Fields(b.String()), " ")
}

// linksOtherPlayer reports whether node links to a player other than href.
// Headshot and name links to the same player count once.
func linksOtherPlayer(node *goquery.Selection, href string) bool {
	other := false
	node.Find(playerLinkSelector).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if h, _ := a.Attr("href"); h != href {
			other = true
		}
		return !other
	})
	return other
}

// parseInjuryText reports false when the text carries neither a status nor a return date.
func parseInjuryText(name, text string, now time.Time) (injuries.Injury, bool) {
	injury := injuries.Injury{Name: name, DaysOut: injuries.DefaultDaysOut}

	if m := statusPattern.FindStringSubmatch(withoutReturn(text)); m != nil {
		injury.Status = strings.ToUpper(strings.TrimSpace(m[1]))
		injury.InjuryType = strings.TrimSpace(m[2])
	}
	if m := returnPattern.FindStringSubmatch(text); m != nil {
		injury.ExpectedReturn = strings.Join(strings.Fields(m[1]), " ")
		if ret, err := timeutil.ParseLongDate(injury.ExpectedReturn); err == nil {
			injury.DaysOut = timeutil.DaysUntil(now, ret, 1)
		}
	}

	if injury.Status == "" && injury.ExpectedReturn == "" {
		return injuries.Injury{}, false
	}
	return injury, true
}

// withoutReturn blanks the expected-return phrase so text from an adjacent cell
// cannot extend the injury type.
func withoutReturn(text string) string {
	text = returnPattern.ReplaceAllString(text, " ")
	return strings.ReplaceAll(text, expectedReturnMarker, " ")
}
