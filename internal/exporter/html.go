package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/model"
)

// FolderName is the heading the exported searches are grouped under.
const FolderName = "Tagged searches"

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/tagsearch-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tagsearch-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders searches as a Netscape bookmark file. Each search
// becomes one bookmark titled with its tag and pointing at its search URL.
func ExportHTML(searches []model.TaggedSearch, settings controller.Settings, now time.Time) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(FolderName))
	b.WriteString("    <DL><p>\n")

	stamp := now.Unix()
	for _, s := range searches {
		fmt.Fprintf(&b,
			"        <DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			html.EscapeString(settings.SearchURLFor(s.Query)),
			stamp,
			html.EscapeString(s.Tag),
		)
	}

	b.WriteString("    </DL><p>\n")
	b.WriteString("</DL><p>\n")

	return b.String()
}
