package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/model"
)

var testSettings = controller.Settings{SearchURL: "https://search.example/?q="}

func TestExportHTML_Empty(t *testing.T) {
	html := ExportHTML(nil, testSettings, time.Unix(0, 0))

	if !strings.Contains(html, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("expected DOCTYPE declaration")
	}
	if !strings.Contains(html, "<TITLE>Bookmarks</TITLE>") {
		t.Error("expected TITLE element")
	}
	if !strings.Contains(html, FolderName+"</H3>") {
		t.Error("expected folder heading")
	}
	if strings.Contains(html, "<A ") {
		t.Error("expected no anchors for empty export")
	}
}

func TestExportHTML_SingleSearch(t *testing.T) {
	searches := []model.TaggedSearch{{Tag: "golang", Query: "go lang"}}

	html := ExportHTML(searches, testSettings, time.Unix(1700000000, 0))

	if !strings.Contains(html, `<A HREF="https://search.example/?q=go%20lang"`) {
		t.Errorf("expected encoded search URL, got:\n%s", html)
	}
	if !strings.Contains(html, ">golang</A>") {
		t.Error("expected tag as anchor text")
	}
	if !strings.Contains(html, `ADD_DATE="1700000000"`) {
		t.Error("expected ADD_DATE timestamp")
	}
}

func TestExportHTML_KeepsOrder(t *testing.T) {
	searches := []model.TaggedSearch{
		{Tag: "apple", Query: "a"},
		{Tag: "Banana", Query: "b"},
		{Tag: "cherry", Query: "c"},
	}

	html := ExportHTML(searches, testSettings, time.Now())

	a := strings.Index(html, ">apple<")
	b := strings.Index(html, ">Banana<")
	c := strings.Index(html, ">cherry<")
	if a >= b || b >= c {
		t.Errorf("expected searches in given order, got positions %d %d %d", a, b, c)
	}
}

func TestExportHTML_EscapesSpecialChars(t *testing.T) {
	searches := []model.TaggedSearch{{Tag: "<script>", Query: "x"}}
	settings := controller.Settings{SearchURL: "https://search.example/?lang=en&q="}

	html := ExportHTML(searches, settings, time.Now())

	if strings.Contains(html, "<script>") {
		t.Error("script tag should be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag")
	}
	if !strings.Contains(html, "lang=en&amp;q=x") {
		t.Error("expected escaped ampersand in URL")
	}
}
