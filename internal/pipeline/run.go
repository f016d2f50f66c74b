// Package pipeline provides the high-level orchestration for the GOOD export:
// configuration in, GOOD file out, strictly sequential, one pass per run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/nepscript/goodsync/internal/config"
	"github.com/nepscript/goodsync/internal/good"
	"github.com/nepscript/goodsync/internal/hoyolab"
	"github.com/nepscript/goodsync/internal/inventory"
	"github.com/nepscript/goodsync/internal/observability"
	"github.com/nepscript/goodsync/internal/planner"
	"github.com/nepscript/goodsync/internal/schemas"
)

// Options holds everything Run needs beyond the loaded configuration.
type Options struct {
	Config *config.Config

	// BaseURL overrides the calculator endpoint; tests point it at a mock
	// server. Empty means the real API.
	BaseURL string

	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
}

// Run executes the export pipeline: roster fetch, requirement probe, minimum
// cover, inventory computation, GOOD mapping, file write. The first error
// aborts the run; nothing is written on failure.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	printer := observability.NewPrinter(out)
	runID := uuid.New()
	if cfg.Verbose {
		fmt.Fprintf(out, "[VERBOSE] run %s (uid %s, region %s)\n", runID, cfg.UID, cfg.Region)
	}

	clientOpts := []hoyolab.Option{hoyolab.WithTimeout(cfg.Timeout)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, hoyolab.WithBaseURL(opts.BaseURL))
	}
	client := hoyolab.NewClient(cfg.Cookies, cfg.UID, cfg.Region, clientOpts...)

	fmt.Fprintf(out, "Step 1/6: Fetching avatar roster...\n")
	avatars, err := client.AvatarList(ctx)
	if err != nil {
		return fmt.Errorf("avatar roster fetch failed: %w", err)
	}

	fmt.Fprintf(out, "Step 2/6: Fetching weapon roster...\n")
	weapons, err := client.WeaponList(ctx)
	if err != nil {
		return fmt.Errorf("weapon roster fetch failed: %w", err)
	}

	fmt.Fprintf(out, "Step 3/6: Probing material requirements for %d roster entries...\n", len(avatars)+len(weapons))
	requirements, err := probeRequirements(ctx, client, avatars, weapons)
	if err != nil {
		return fmt.Errorf("requirement probe failed: %w", err)
	}

	fmt.Fprintf(out, "Step 4/6: Selecting minimum roster cover...\n")
	picked := planner.MinimumCover(requirements)
	if cfg.Verbose {
		printer.PrintCover(len(avatars), len(weapons), picked)
	}

	fmt.Fprintf(out, "Step 5/6: Computing inventory (%d entries x %d plans)...\n", len(picked), cfg.Count)
	results, err := computeInventory(ctx, client, avatars, weapons, picked, cfg.Count)
	if err != nil {
		return fmt.Errorf("inventory computation failed: %w", err)
	}

	tallied := inventory.ConvertSurplus(inventory.Tally(results))
	if cfg.Verbose {
		printer.PrintInventory(tallied)
	}

	doc := good.NewDocument(good.MapMaterials(tallied))

	fmt.Fprintf(out, "Step 6/6: Writing GOOD export to %s...\n", cfg.OutPath)
	if err := good.Write(doc, cfg.OutPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if schemaPath := schemas.ResolvePath(schemas.GoodSchemaFile); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, cfg.OutPath); err != nil {
			return fmt.Errorf("exported document failed schema validation: %w", err)
		}
	} else if cfg.Verbose {
		fmt.Fprintf(out, "[VERBOSE] schema file not found, skipping output validation\n")
	}

	if cfg.Verbose {
		printer.PrintExport(doc)
	}
	fmt.Fprintf(out, "Done. %d materials exported.\n", len(doc.Materials))
	return nil
}

// probeRequirements prices one full-progression plan per roster entry and
// records which material IDs each entry consumes. Response slots come back in
// request order, so slot i belongs to ids[i].
func probeRequirements(ctx context.Context, client *hoyolab.Client, avatars []hoyolab.Avatar, weapons []hoyolab.Weapon) (map[int64][]int64, error) {
	items := make([]hoyolab.ComputeItem, 0, len(avatars)+len(weapons))
	ids := make([]int64, 0, len(avatars)+len(weapons))
	for _, a := range avatars {
		items = append(items, planner.AvatarItem(a))
		ids = append(ids, a.ID)
	}
	for _, w := range weapons {
		items = append(items, planner.WeaponItem(w))
		ids = append(ids, w.ID)
	}

	requirements := make(map[int64][]int64, len(ids))
	offset := 0
	for _, chunk := range planner.Chunk(items, planner.ChunkSize) {
		result, err := client.BatchCompute(ctx, chunk)
		if err != nil {
			return nil, err
		}
		if len(result.Items) != len(chunk) {
			return nil, fmt.Errorf("calculator returned %d slots for %d plans", len(result.Items), len(chunk))
		}
		for i, slot := range result.Items {
			requirements[ids[offset+i]] = materialIDs(slot)
		}
		offset += len(chunk)
	}
	return requirements, nil
}

// computeInventory prices count copies of every picked entry's plan, pairing
// weapons into avatar slots, and collects the chunked results.
func computeInventory(ctx context.Context, client *hoyolab.Client, avatars []hoyolab.Avatar, weapons []hoyolab.Weapon, picked []int64, count int) ([]*hoyolab.BatchComputeResult, error) {
	pickedSet := make(map[int64]bool, len(picked))
	for _, id := range picked {
		pickedSet[id] = true
	}

	var avatarItems, weaponItems []hoyolab.ComputeItem
	for _, a := range avatars {
		if pickedSet[a.ID] {
			avatarItems = append(avatarItems, planner.Repeat(planner.AvatarItem(a), count)...)
		}
	}
	for _, w := range weapons {
		if pickedSet[w.ID] {
			weaponItems = append(weaponItems, planner.Repeat(planner.WeaponItem(w), count)...)
		}
	}

	var results []*hoyolab.BatchComputeResult
	for _, chunk := range planner.Chunk(planner.Pair(avatarItems, weaponItems), planner.ChunkSize) {
		result, err := client.BatchCompute(ctx, chunk)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// materialIDs flattens one compute slot's consume lists into a sorted,
// deduplicated list of material IDs.
func materialIDs(slot hoyolab.ItemConsume) []int64 {
	seen := make(map[int64]bool)
	for _, m := range slot.Materials() {
		seen[m.ID] = true
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
