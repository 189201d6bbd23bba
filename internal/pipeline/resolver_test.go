package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/avolkov/infobot/internal/dispatch"
	"github.com/avolkov/infobot/internal/extract"
	"github.com/avolkov/infobot/internal/model"
	"github.com/avolkov/infobot/internal/wiki"
)

const marsPage = `<html><body>
<table class="infobox">
<tr><th>Equatorial radius</th><td>3,396.2±0.1 km</td></tr>
<tr><th>Polar radius</th><td>3,376.2±0.1 km</td></tr>
</table>
</body></html>`

const japanPage = `<html><body>
<table class="infobox">
<tr><th>Official language</th><td>Japanese</td></tr>
<tr><th>Population</th><td>(2024)[2] 123,890,000</td></tr>
</table>
</body></html>`

const jordanPage = `<html><body>
<table class="infobox">
<tr><th>Born</th><td>February 17, 1963 (age 62)[1] Brooklyn, New York, U.S.</td></tr>
<tr><th>Nationality</th><td>American</td></tr>
</table>
</body></html>`

const plainPage = `<html><body><p>Nothing but prose.</p></body></html>`

// newFakeWiki serves a minimal MediaWiki API over the given title→HTML
// pages: list=search returns the first title containing the needle,
// action=parse returns the page HTML or a missingtitle error.
func newFakeWiki(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("action") {
		case "query":
			needle := strings.ToLower(q.Get("srsearch"))
			for title := range pages {
				if strings.Contains(strings.ToLower(title), needle) {
					fmt.Fprintf(w, `{"query":{"search":[{"title":%q}]}}`, title)
					return
				}
			}
			fmt.Fprint(w, `{"query":{"search":[]}}`)
		case "parse":
			page, ok := pages[q.Get("page")]
			if !ok {
				fmt.Fprint(w, `{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`)
				return
			}
			resp, _ := json.Marshal(map[string]any{"parse": map[string]any{"text": page}})
			_, _ = w.Write(resp)
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
		}
	}))
}

func newTestResolver(t *testing.T, serverURL string) *Resolver {
	t.Helper()

	cfg := model.DefaultConfig()
	cfg.Wiki.APIBaseURL = serverURL
	cfg.Politeness.RespectRobots = false
	cfg.Politeness.RequestsPerSecond = 1000

	return NewResolver(wiki.NewClient(cfg))
}

func TestResolver_PolarRadius(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Mars": marsPage})
	defer server.Close()

	got, err := newTestResolver(t, server.URL).PolarRadius(context.Background(), "mars")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "3,376.2" {
		t.Errorf("Expected 3,376.2, got %q", got)
	}
}

func TestResolver_Population(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Japan": japanPage})
	defer server.Close()

	got, err := newTestResolver(t, server.URL).Population(context.Background(), "japan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "123,890,000" {
		t.Errorf("Expected 123,890,000, got %q", got)
	}
}

func TestResolver_BirthPlace(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Michael Jordan": jordanPage})
	defer server.Close()

	got, err := newTestResolver(t, server.URL).BirthPlace(context.Background(), "michael jordan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "Brooklyn, New York" {
		t.Errorf("Expected Brooklyn, New York, got %q", got)
	}
}

func TestResolver_OfficialLanguageDefect(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Japan": japanPage})
	defer server.Close()

	_, err := newTestResolver(t, server.URL).OfficialLanguage(context.Background(), "japan")
	if !errors.Is(err, extract.ErrExtraction) {
		t.Errorf("Expected the defective language field to fail extraction, got %v", err)
	}
}

func TestResolver_BirthDateNotImplemented(t *testing.T) {
	_, err := NewResolver(nil).BirthDate(context.Background(), "anyone")
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Expected ErrNotImplemented, got %v", err)
	}
}

func TestResolver_SubjectNotFound(t *testing.T) {
	server := newFakeWiki(t, map[string]string{})
	defer server.Close()

	_, err := newTestResolver(t, server.URL).Population(context.Background(), "nowhereland")
	if !errors.Is(err, wiki.ErrPageNotFound) {
		t.Errorf("Expected ErrPageNotFound, got %v", err)
	}
}

func TestResolver_NoInfobox(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Prose": plainPage})
	defer server.Close()

	_, err := newTestResolver(t, server.URL).PolarRadius(context.Background(), "prose")
	if !errors.Is(err, extract.ErrNoInfobox) {
		t.Errorf("Expected ErrNoInfobox, got %v", err)
	}
}

func TestDefaultTable_RadiusQuery(t *testing.T) {
	server := newFakeWiki(t, map[string]string{"Mars": marsPage})
	defer server.Close()

	table := DefaultTable(newTestResolver(t, server.URL))

	result, err := table.Dispatch(context.Background(), strings.Fields("what is the polar radius of mars"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(result.Answers, []string{"3,376.2"}) {
		t.Errorf("Expected [3,376.2], got %v", result.Answers)
	}
}

func TestDefaultTable_UnknownQuery(t *testing.T) {
	table := DefaultTable(NewResolver(nil))

	result, err := table.Dispatch(context.Background(), strings.Fields("what is the meaning of life"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(result.Answers, []string{dispatch.DontUnderstand}) {
		t.Errorf("Expected %q, got %v", dispatch.DontUnderstand, result.Answers)
	}
}

func TestDefaultTable_Bye(t *testing.T) {
	table := DefaultTable(NewResolver(nil))

	result, err := table.Dispatch(context.Background(), []string{"bye"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.Terminate {
		t.Error("Expected bye to signal termination")
	}
}

func TestDefaultTable_SubjectNotFoundPropagates(t *testing.T) {
	server := newFakeWiki(t, map[string]string{})
	defer server.Close()

	table := DefaultTable(newTestResolver(t, server.URL))

	_, err := table.Dispatch(context.Background(), strings.Fields("what is the population of nowhereland"))
	if !errors.Is(err, wiki.ErrPageNotFound) {
		t.Errorf("Expected ErrPageNotFound to propagate, got %v", err)
	}
}

func TestDefaultTable_BirthDateQuery(t *testing.T) {
	table := DefaultTable(NewResolver(nil))

	_, err := table.Dispatch(context.Background(), strings.Fields("when was marie curie born"))
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Expected ErrNotImplemented to propagate, got %v", err)
	}
}
