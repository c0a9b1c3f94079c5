// planshot runs one full table pass: load the detection snapshot from CSV,
// plan the best shot, drive the strike, and publish the result.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/robocue/backend/internal/config"
	"github.com/robocue/backend/internal/database"
	"github.com/robocue/backend/internal/loader"
	"github.com/robocue/backend/internal/planner"
	"github.com/robocue/backend/internal/redis"
	"github.com/robocue/backend/internal/robot"
	"github.com/robocue/backend/internal/store"
	"github.com/robocue/backend/internal/table"
	"github.com/robocue/backend/internal/ws"
)

func main() {
	inputDir := flag.String("input", "csv", "directory with the detection CSV files")
	record := flag.Bool("record", false, "persist and publish the selected shot")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	snap, err := loader.Load(*inputDir)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	// Fall back to the standard table when the detection pass did not dump
	// pocket/wall coordinates.
	if len(snap.Pockets) == 0 || len(snap.Walls) == 0 {
		tbl := table.Standard()
		if len(snap.Pockets) == 0 {
			snap.Pockets = tbl.Pockets
		}
		if len(snap.Walls) == 0 {
			snap.Walls = tbl.Walls
		}
	}

	log.Printf("[PLAN] snapshot: %d balls, %d pockets, %d walls", len(snap.Balls), len(snap.Pockets), len(snap.Walls))

	shot, err := planner.Plan(snap, cfg.ClearanceRadius)
	if errors.Is(err, planner.ErrNoFeasibleShot) {
		// Terminal: no hardware action may follow.
		log.Fatal("No available shots (direct or bank)")
	}
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	switch shot.Kind {
	case planner.DirectShot:
		log.Printf("[PLAN] Selected direct shot: ball=%d distance=%.1f", shot.BallID, shot.TotalDistance)
	case planner.BankShot:
		log.Printf("[PLAN] Selected bank shot via %s: ball=%d distance=%.1f", shot.Wall, shot.BallID, shot.TotalDistance)
	}

	// Drive the rig. Without hardware attached the dry-run driver logs the
	// command sequence it would send.
	var drv robot.Driver = robot.LogDriver{}
	if !cfg.DryRun {
		log.Fatalf("No driver built for controller at %s; set ROBOT_DRY_RUN=true", cfg.RobotAddress)
	}

	ctl := robot.NewController(drv, cfg.ClearanceRadius)
	if err := ctl.ExecuteShot(snap.CueBall, shot); err != nil {
		log.Fatalf("Strike execution failed: %v", err)
	}

	if *record {
		recordShot(cfg, shot)
	}
}

// recordShot persists the shot and notifies dashboard viewers; both are
// best-effort once the strike has been played.
func recordShot(cfg *config.Config, shot planner.ShotCandidate) {
	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Printf("[RECORD] database unavailable: %v", err)
	} else {
		defer db.Close()
		if id, err := store.SaveShot(ctx, db, shot, "planshot"); err != nil {
			log.Printf("[RECORD] failed to persist shot: %v", err)
		} else {
			log.Printf("[RECORD] shot persisted (id=%d)", id)
		}
	}

	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Printf("[RECORD] redis unavailable: %v", err)
		return
	}
	defer rdb.Close()
	ws.PublishShotEvent(ctx, rdb, map[string]interface{}{
		"type": "shot_planned",
		"shot": shot,
	})
}
