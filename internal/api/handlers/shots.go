package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robocue/backend/internal/store"
)

func marshalEvent(event interface{}) ([]byte, error) {
	return json.Marshal(event)
}

// ListShots returns recent planning history, newest first.
func ListShots(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		shots, err := store.ListShots(context.Background(), db, limit)
		if err != nil {
			log.Printf("[SHOTS] history query failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shots": shots, "count": len(shots)})
	}
}

// LatestShot returns the most recent plan, preferring the Redis cache.
func LatestShot(db *sqlx.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		if rdb != nil {
			if cached, err := rdb.Get(ctx, LastPlanKey).Result(); err == nil {
				var payload map[string]interface{}
				if json.Unmarshal([]byte(cached), &payload) == nil {
					c.JSON(http.StatusOK, gin.H{"cached": true, "plan": payload})
					return
				}
			}
		}

		shot, err := store.LatestShot(ctx, db)
		if err != nil {
			log.Printf("[SHOTS] latest query failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if shot == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no shots planned yet"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cached": false, "plan": shot})
	}
}
