package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robocue/backend/internal/config"
	"github.com/robocue/backend/internal/planner"
	"github.com/robocue/backend/internal/store"
	"github.com/robocue/backend/internal/ws"
)

// LastPlanKey caches the most recent planning result for quick polling.
const LastPlanKey = "last_plan"

// PlanRequest is a position snapshot plus an optional clearance override.
type PlanRequest struct {
	planner.Snapshot
	Radius float64 `json:"radius,omitempty"`
}

// PlanShot runs one planning pass over the posted snapshot, persists the
// selected candidate, and fans it out to viewers.
func PlanShot(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot"})
			return
		}

		radius := req.Radius
		if radius <= 0 {
			radius = cfg.ClearanceRadius
		}

		shot, err := planner.Plan(req.Snapshot, radius)
		if errors.Is(err, planner.ErrNoFeasibleShot) {
			// The single terminal planning outcome; nothing is persisted and
			// nothing reaches the rig.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no feasible shot"})
			return
		}
		if err != nil {
			log.Printf("[PLAN] planning failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		log.Printf("[PLAN] selected %s shot: ball=%d distance=%.1f", shot.Kind, shot.BallID, shot.TotalDistance)

		ctx := context.Background()
		id, err := store.SaveShot(ctx, db, shot, "api")
		if err != nil {
			log.Printf("[PLAN] failed to persist shot: %v", err)
			// Planning succeeded; the result is still returned.
		}

		event := gin.H{
			"type":       "shot_planned",
			"shot":       shot,
			"shot_id":    id,
			"planned_at": time.Now().UTC(),
		}
		if rdb != nil {
			if data, merr := marshalEvent(event); merr == nil {
				rdb.Set(ctx, LastPlanKey, data, 10*time.Minute)
			}
			ws.PublishShotEvent(ctx, rdb, event)
		}

		c.JSON(http.StatusOK, gin.H{"shot": shot, "shot_id": id})
	}
}

// HandleShotFeed upgrades the request to the live shot feed.
func HandleShotFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws.FeedHub.ServeFeed(c.Writer, c.Request)
	}
}
