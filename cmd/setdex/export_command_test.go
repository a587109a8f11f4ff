package main

import (
	"context"
	"testing"

	"setdex/internal/store"
	"setdex/internal/testsupport"
)

func TestExportStoresGenerations(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithExportDB(), testsupport.WithGenerations("xy"))

	out, stderr, err := runCLI(t, []string{"export"}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v\nstderr: %s", err, stderr)
	}
	requireContains(t, out, env.cfg.Paths.ExportDB)
	requireContains(t, stderr, "generation exported")

	st, err := store.Open(context.Background(), env.cfg.Paths.ExportDB)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	sets, err := st.Sets(context.Background(), "xy", "Garchomp")
	if err != nil {
		t.Fatalf("Sets: %v", err)
	}
	if len(sets) != 1 || sets[0].Label != "OU Swords Dance" {
		t.Fatalf("stored sets = %+v", sets)
	}

	// A second export replaces rather than duplicates.
	if _, _, err := runCLI(t, []string{"export"}, env.configPath); err != nil {
		t.Fatalf("second export: %v", err)
	}
	summaries, err := st.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Sets != 3 || summaries[0].Subjects != 3 {
		t.Fatalf("summaries = %+v", summaries)
	}
}

func TestExportRequiresDatabase(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Paths.ExportDB = ""
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"export"}, env.configPath)
	if err == nil {
		t.Fatal("expected error without export database")
	}
	requireContains(t, err.Error(), "no export database configured")
}

func TestExportSkipsMissingGeneration(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithExportDB(), testsupport.WithGenerations("rb", "xy"))

	out, stderr, err := runCLI(t, []string{"export"}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v\nstderr: %s", err, stderr)
	}
	requireContains(t, stderr, "generation directory missing")
	requireContains(t, stderr, `"generation":"rb"`)
	requireContains(t, out, "xy")

	st, err := store.Open(context.Background(), env.cfg.Paths.ExportDB)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	summaries, err := st.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Generation != "xy" {
		t.Fatalf("summaries = %+v", summaries)
	}
}
