package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/nikbrunner/tagsearch/internal/controller"
	"github.com/nikbrunner/tagsearch/internal/exporter"
	"github.com/nikbrunner/tagsearch/internal/importer"
	"github.com/nikbrunner/tagsearch/internal/launch"
	"github.com/nikbrunner/tagsearch/internal/model"
)

// runList prints every tag with its search URL, in list order.
func runList(w io.Writer, c *controller.Controller) error {
	st := c.State()
	if len(st.Tags) == 0 {
		_, err := fmt.Fprintln(w, "No saved searches")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tag := range st.Tags {
		fmt.Fprintf(tw, "%s\t%s\n", tag, c.Settings().SearchURLFor(st.Lookup(tag)))
	}
	return tw.Flush()
}

// saveSearch runs tag and query through the same events the form sends.
func saveSearch(c *controller.Controller, tag, query string) error {
	for _, ev := range []controller.Event{
		controller.TagChanged{Text: tag},
		controller.QueryChanged{Text: query},
		controller.SaveRequested{},
	} {
		if _, err := c.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

func runAdd(w io.Writer, c *controller.Controller, tag, query string) error {
	if !(model.TaggedSearch{Tag: tag, Query: query}).Valid() {
		return errors.New("tag and query must not be empty")
	}
	if err := saveSearch(c, tag, query); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Saved %q\n", tag)
	return err
}

// runRemove deletes tag, matching it case-insensitively.
func runRemove(w io.Writer, c *controller.Controller, tag string) error {
	existing := model.FindTagFold(c.State().Tags, tag)
	if existing == "" {
		return fmt.Errorf("no search tagged %q", tag)
	}

	for _, ev := range []controller.Event{
		controller.DeleteRequested{Tag: existing},
		controller.DeleteConfirmed{},
	} {
		if _, err := c.Dispatch(ev); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Deleted %q\n", existing)
	return err
}

func runExport(w io.Writer, c *controller.Controller, path string) error {
	if path == "" {
		var err error
		path, err = exporter.DefaultExportPath()
		if err != nil {
			return fmt.Errorf("failed to resolve export path: %w", err)
		}
	}

	searches := model.SearchesFromMap(c.State().Searches)
	html := exporter.ExportHTML(searches, c.Settings(), time.Now())

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	_, err := fmt.Fprintf(w, "Exported %d searches to %s\n", len(searches), path)
	return err
}

func runImport(w io.Writer, c *controller.Controller, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	res, err := importer.ParseHTMLSearches(file, c.Settings().SearchURL)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	var errs []error
	for _, s := range res.Searches {
		if err := saveSearch(c, s.Tag, s.Query); err != nil {
			errs = append(errs, err)
		}
	}

	summary := fmt.Sprintf("Imported %d searches", len(res.Searches)-len(errs))
	if res.Skipped > 0 {
		summary += fmt.Sprintf(" (%d other bookmarks skipped)", res.Skipped)
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// runEffects carries out the launch effects a command produced.
func runEffects(l launch.Launcher, effects []controller.Effect) error {
	var errs []error
	for _, eff := range effects {
		switch eff := eff.(type) {
		case controller.OpenURL:
			errs = append(errs, l.Open(eff.URL))
		case controller.Share:
			errs = append(errs, l.Share(eff.Subject, eff.Body))
		}
	}
	return errors.Join(errs...)
}
