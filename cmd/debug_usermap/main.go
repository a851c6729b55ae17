package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"usermap-reconciler/core/cache"
	"usermap-reconciler/core/config"
	"usermap-reconciler/core/reconcile"
	"usermap-reconciler/core/report"
	"usermap-reconciler/feature/userdata"
)

// Traces one name through the profiles and the caches.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_usermap <name>")
	}
	name := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	adapter := userdata.NewAdapter(cfg.Source.Dir, cfg.Source.Pattern)
	observations, err := adapter.Observations(context.Background(), report.Discard)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== TEST 1: Profiles claiming the name ===")
	var claims []reconcile.Observation
	for _, obs := range observations {
		if obs.Name == name {
			claims = append(claims, obs)
			fmt.Printf("%s v%d last seen %d (%s)\n", obs.ID, obs.ID.Version(), obs.LastSeen, obs.Source)
		}
	}
	fmt.Printf("Total profiles: %d, claiming %q: %d\n", len(observations), name, len(claims))

	fmt.Println("\n=== TEST 2: Reconciliation decisions ===")
	r := reconcile.New(report.SinkFunc(func(e report.Event) {
		if e.Name == name {
			fmt.Printf("%s: new=%s old=%s ts=%d\n", e.Kind, e.New, e.Old, e.Timestamp)
		}
	}))
	r.IngestAll(observations)
	if id, ok := r.Snapshot().Names.Get(name); ok {
		fmt.Printf("Winner: %s\n", id)
	} else {
		fmt.Println("NOT FOUND after reconciliation")
	}

	fmt.Println("\n=== TEST 3: Cache contents ===")
	contents, err := cache.Load(cfg.Cache.Dir, report.Discard)
	if errors.Is(err, cache.ErrMissingCacheFile) {
		fmt.Println("Caches not written yet")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if id, ok := contents.Names.Get(name); ok {
		fmt.Printf("Cached: %s (in uuids.bin: %v)\n", id, contents.IDs.Has(id))
	} else {
		fmt.Println("NOT FOUND in usermap.bin")
	}
}
