package watchlist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kabuka-alert/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadPortfolio(t *testing.T) {
	path := writeFile(t, "portfolio_tickers.csv",
		"ticker,company_name\n"+
			"7203.T,トヨタ自動車\n"+
			" 9984.T ,ソフトバンクグループ\n"+
			",空行ガード\n"+
			"6758.T,ソニーグループ\n")

	entries, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio returned error: %v", err)
	}

	want := []models.Entry{
		models.NewPortfolioEntry("7203.T", "トヨタ自動車"),
		models.NewPortfolioEntry("9984.T", "ソフトバンクグループ"),
		models.NewPortfolioEntry("6758.T", "ソニーグループ"),
	}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d (%+v)", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestLoadOther(t *testing.T) {
	path := writeFile(t, "other_tickers.csv",
		"ticker,company_name,up_threshold,down_threshold\n"+
			"6361.T,荏原製作所,5.0,3.0\n"+
			"8035.T,東京エレクトロン,4,4\n")

	entries, err := LoadOther(path)
	if err != nil {
		t.Fatalf("LoadOther returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Ticker != "6361.T" || first.CompanyName != "荏原製作所" {
		t.Errorf("entries[0] identity = %s (%s), want 6361.T (荏原製作所)", first.Ticker, first.CompanyName)
	}
	if first.UpThreshold != 5.0 || first.DownThreshold != 3.0 {
		t.Errorf("entries[0] bounds = %v/%v, want 5.0/3.0", first.UpThreshold, first.DownThreshold)
	}
	if first.Category != models.CategoryOther {
		t.Errorf("entries[0] category = %s, want %s", first.Category, models.CategoryOther)
	}
	if entries[1].UpThreshold != 4 || entries[1].DownThreshold != 4 {
		t.Errorf("entries[1] bounds = %v/%v, want 4/4", entries[1].UpThreshold, entries[1].DownThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadPortfolio(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist in the chain", err)
	}
}

func TestLoadPreservesDuplicates(t *testing.T) {
	path := writeFile(t, "portfolio_tickers.csv",
		"ticker,company_name\n"+
			"7203.T,トヨタ自動車\n"+
			"7203.T,トヨタ自動車\n")

	entries, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2 (duplicates preserved)", len(entries))
	}
}

func TestLoadOtherMalformedThreshold(t *testing.T) {
	path := writeFile(t, "other_tickers.csv",
		"ticker,company_name,up_threshold,down_threshold\n"+
			"6361.T,荏原製作所,abc,3.0\n")

	if _, err := LoadOther(path); err == nil {
		t.Fatal("LoadOther returned nil for a malformed threshold")
	}
}

func TestLint(t *testing.T) {
	lists := Lists{
		Portfolio: []models.Entry{
			models.NewPortfolioEntry("7203.T", "トヨタ自動車"),
			models.NewPortfolioEntry("7203.T", "トヨタ自動車"),
			models.NewPortfolioEntry("9432.T", ""),
		},
		Other: []models.Entry{
			models.NewOtherEntry("6361.T", "荏原製作所", 5, 3),
			models.NewOtherEntry("8035.T", "東京エレクトロン", -1, 3),
			models.NewOtherEntry("6501.T", "日立製作所", 0, 0),
		},
	}

	issues := Lint(lists)

	want := []struct {
		ticker   string
		fragment string
	}{
		{"7203.T", "duplicate ticker"},
		{"9432.T", "blank company name"},
		{"8035.T", "negative up threshold"},
		{"6501.T", "bounds overlap"},
	}
	if len(issues) != len(want) {
		t.Fatalf("issues = %d (%v), want %d", len(issues), issues, len(want))
	}
	for _, w := range want {
		found := false
		for _, issue := range issues {
			if issue.Ticker == w.ticker && strings.Contains(issue.Problem, w.fragment) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %q finding for %s in %v", w.fragment, w.ticker, issues)
		}
	}
}

func TestLintCleanLists(t *testing.T) {
	lists := Lists{
		Portfolio: []models.Entry{
			models.NewPortfolioEntry("7203.T", "トヨタ自動車"),
		},
		Other: []models.Entry{
			models.NewOtherEntry("6361.T", "荏原製作所", 5, 3),
		},
	}

	if issues := Lint(lists); len(issues) != 0 {
		t.Errorf("Lint = %v, want no issues", issues)
	}
}
