package config

import (
	"os"
	"path/filepath"
	"testing"

	"bizscan/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, DefaultJobs(), LoadJobs(filepath.Join(dir, "job.json")))
	require.Equal(t, DefaultLeads(), LoadLeads(filepath.Join(dir, "lead.json")))
	require.Equal(t, DefaultPrices(), LoadPrices(filepath.Join(dir, "price.json")))
	require.Equal(t, DefaultJobs(), LoadJobs(""))
}

func TestFileOverridesKeyByKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "job.json", `{
		"keywords": ["golang", " rust ", "Golang"],
		"max_results": 25,
		"output_format": "json",
		"min_priority": "HIGH",
		"seed": 99
	}`)

	got := LoadJobs(path)
	want := DefaultJobs()
	want.Keywords = []string{"golang", "rust"}
	want.MaxResults = 25
	want.OutputFormat = "json"
	want.MinPriority = "high"
	want.Seed = 99
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadJobs() mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON5AndLocalOverlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lead.json5", `{
		// comments and trailing commas are fine
		industries: ["finance"],
		min_score: 80,
	}`)
	writeFile(t, dir, "lead.local.json5", `{min_score: 55, data_dir: "out"}`)

	got := LoadLeads(path)
	require.Equal(t, []string{"finance"}, got.Industries)
	require.Equal(t, 55, got.MinScore)
	require.Equal(t, "out", got.DataDir)
	require.Equal(t, DefaultLeads().CompanySize, got.CompanySize)
}

func TestYAMLProducts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "price.yaml", `
products:
  - name: Widget
    category: Tools
    base_price: 9.5
sites: [Shop A, Shop B]
price_change_threshold: 0.2
`)
	got := LoadPrices(path)
	require.Equal(t, []domain.Product{{Name: "Widget", Category: "Tools", BasePrice: 9.5}}, got.Products)
	require.Equal(t, []string{"Shop A", "Shop B"}, got.Sites)
	require.Equal(t, 0.2, got.PriceChangeThreshold)
	require.Equal(t, 300, got.CheckInterval)
}

func TestInvalidFilesFallBack(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"parse error", `{"keywords": [`},
		{"bad format", `{"output_format": "xml"}`},
		{"negative max", `{"max_results": -1}`},
		{"bad delays", `{"delay_min_ms": 500, "delay_max_ms": 100}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "job.json", tt.body)
			require.Equal(t, DefaultJobs(), LoadJobs(path))
		})
	}

	path := writeFile(t, dir, "price.json", `{"products": [{"name": "", "base_price": 0}]}`)
	require.Equal(t, DefaultPrices(), LoadPrices(path))
}

func TestNormalizeWarnings(t *testing.T) {
	cfg := DefaultJobs()
	cfg.Keywords = nil
	cfg.MinPriority = "urgent"

	out, vr := NormalizeJobs(cfg)
	require.True(t, vr.OK())
	require.NoError(t, vr.Err())
	require.Len(t, vr.Warnings, 2)
	require.Equal(t, "low", out.MinPriority)
}

func TestSaveAtomicAndEnsure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg", "job.json")

	wrote, err := EnsureUserConfig(path, DefaultJobs())
	require.NoError(t, err)
	require.True(t, wrote)
	require.Equal(t, DefaultJobs(), LoadJobs(path))

	wrote, err = EnsureUserConfig(path, DefaultLeads())
	require.NoError(t, err)
	require.False(t, wrote)

	cfg := DefaultJobs()
	cfg.MaxResults = 7
	require.NoError(t, SaveAtomic(path, cfg))
	require.Equal(t, 7, LoadJobs(path).MaxResults)

	_, err = os.Stat(path + ".bak")
	require.NoError(t, err)

	ypath := filepath.Join(dir, "price.yml")
	require.NoError(t, SaveAtomic(ypath, DefaultPrices()))
	require.Equal(t, DefaultPrices(), LoadPrices(ypath))
}

func TestWriteFileAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.csv")

	require.NoError(t, WriteFileAtomic(path, []byte("v1\n")))
	_, err := os.Stat(path + ".bak")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, WriteFileAtomic(path, []byte("v2\n")))
	require.NoError(t, WriteFileAtomic(path, []byte("v3\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "v3\n", string(got))
	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	require.Equal(t, "v2\n", string(bak))
	_, err = os.Stat(path + ".tmp")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, filepath.Join("config", "x.local.json"), LocalPath(filepath.Join("config", "x.json")))
}
