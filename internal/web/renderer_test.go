package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/domain/dto"
	"github.com/ougirez/riskmap/internal/pkg/store"
	"github.com/ougirez/riskmap/internal/service/riskmap"
)

func render(t *testing.T, name string, data any) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err = r.Render(&buf, name, data, nil); err != nil {
		t.Fatalf("Render(%s): %v", name, err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("goquery: %v", err)
	}
	return doc
}

func TestDetailFragmentEmptyWithoutPanel(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err = r.Render(&buf, TemplateDetail, (*dto.DetailPanel)(nil), nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Fatalf("expected empty fragment, got %q", buf.String())
	}
}

func TestDetailFragmentEscapes(t *testing.T) {
	doc := render(t, TemplateDetail, &dto.DetailPanel{
		Name:        `<script>alert(1)</script>`,
		Description: "a & b",
		RiskColor:   "#fc8d62",
		CloseHref:   "/",
	})
	if doc.Find("script").Length() != 0 {
		t.Fatalf("name was not escaped")
	}
	if got := doc.Find("h2").Text(); got != `<script>alert(1)</script>` {
		t.Fatalf("h2 text = %q", got)
	}
	if style, _ := doc.Find(".swatch").Attr("style"); style != "background:#fc8d62" {
		t.Fatalf("swatch style = %q", style)
	}
}

func TestLegendFragment(t *testing.T) {
	svc := riskmap.NewService(store.DefaultCatalog())
	doc := render(t, TemplateLegend, svc.Legend())

	entries := doc.Find(".legend-entry")
	if entries.Length() != 9 {
		t.Fatalf("legend has %d entries, want 9", entries.Length())
	}
	if doc.Find(".legend-entry img").Length() != 4 {
		t.Fatalf("expected 4 category icons")
	}
	if doc.Find(".legend-entry .swatch.square").Length() != 4 {
		t.Fatalf("expected 4 risk swatches")
	}
	if doc.Find(".legend-entry .swatch.circle").Length() != 1 {
		t.Fatalf("expected 1 historical event swatch")
	}
}

func TestMapPageEmbedsView(t *testing.T) {
	svc := riskmap.NewService(store.DefaultCatalog())
	doc := render(t, TemplateMap, svc.View(domain.NewViewState().WithFilter("port")))

	if got := doc.Find("header h1").Text(); got != riskmap.Title {
		t.Fatalf("title = %q", got)
	}
	if v, _ := doc.Find("#filter option[selected]").Attr("value"); v != "port" {
		t.Fatalf("selected option = %q", v)
	}
	script := doc.Find("script").Last().Text()
	if !strings.Contains(script, `"Chittagong Port"`) || strings.Contains(script, `"National Highway N1"`) {
		t.Fatalf("embedded view does not reflect the port filter")
	}
}

func TestMapPageDropsStaleResponses(t *testing.T) {
	svc := riskmap.NewService(store.DefaultCatalog())
	script := render(t, TemplateMap, svc.View(domain.NewViewState())).Find("script").Last().Text()

	for _, guard := range []string{
		"if (state.selected !== name) return;",
		"if (state.filter !== filter) return;",
	} {
		if !strings.Contains(script, guard) {
			t.Errorf("page script lacks %q", guard)
		}
	}
}
