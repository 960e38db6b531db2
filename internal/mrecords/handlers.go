package mrecords

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// --- athletes ---

func handleListAthletes(c *gin.Context) {
	items, err := ListAthletes(c.Request.Context())
	if err != nil {
		log.Printf("failed to list athletes: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func handleGetAthlete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := GetAthleteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "athlete not found"})
			return
		}
		log.Printf("failed to get athlete %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func handleAthleteCreate(c *gin.Context) {
	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	id, err := CreateAthlete(c.Request.Context(), req)
	if err != nil {
		log.Printf("failed to create athlete: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	a, err := GetAthleteByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to read back athlete %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, a)
}

func handleAthleteUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	if err := UpdateAthlete(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "athlete not found"})
			return
		}
		log.Printf("failed to update athlete %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

func handleAthleteDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := DeleteAthlete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "athlete not found"})
			return
		}
		if errors.Is(err, ErrHasChildren) {
			c.JSON(409, gin.H{"error": "athlete has recorded injuries"})
			return
		}
		log.Printf("failed to delete athlete %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

// --- injuries ---

func handleListInjuries(c *gin.Context) {
	items, err := ListInjuries(c.Request.Context())
	if err != nil {
		log.Printf("failed to list injuries: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func handleListInjuriesByAthlete(c *gin.Context) {
	athleteID, err := strconv.ParseInt(c.Param("athleteId"), 10, 64)
	if err != nil || athleteID <= 0 {
		c.JSON(400, gin.H{"error": "invalid athlete id"})
		return
	}
	items, err := ListInjuriesByAthlete(c.Request.Context(), athleteID)
	if err != nil {
		log.Printf("failed to list injuries for athlete %d: %v", athleteID, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func handleGetInjury(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	i, err := GetInjuryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "injury not found"})
			return
		}
		log.Printf("failed to get injury %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, i)
}

func handleInjuryCreate(c *gin.Context) {
	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	id, err := CreateInjury(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "athlete not found"})
			return
		}
		log.Printf("failed to create injury: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	i, err := GetInjuryByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to read back injury %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, i)
}

func handleInjuryUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	if err := UpdateInjury(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "injury not found"})
			return
		}
		log.Printf("failed to update injury %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

func handleInjuryDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := DeleteInjury(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "injury not found"})
			return
		}
		if errors.Is(err, ErrHasChildren) {
			c.JSON(409, gin.H{"error": "injury has recorded treatments"})
			return
		}
		log.Printf("failed to delete injury %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

// --- treatments ---

func handleListTreatments(c *gin.Context) {
	items, err := ListTreatments(c.Request.Context())
	if err != nil {
		log.Printf("failed to list treatments: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func handleListTreatmentsByInjury(c *gin.Context) {
	injuryID, err := strconv.ParseInt(c.Param("injuryId"), 10, 64)
	if err != nil || injuryID <= 0 {
		c.JSON(400, gin.H{"error": "invalid injury id"})
		return
	}
	items, err := ListTreatmentsByInjury(c.Request.Context(), injuryID)
	if err != nil {
		log.Printf("failed to list treatments for injury %d: %v", injuryID, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func handleGetTreatment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := GetTreatmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("failed to get treatment %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func handleTreatmentCreate(c *gin.Context) {
	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	id, err := CreateTreatment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "injury not found"})
			return
		}
		log.Printf("failed to create treatment: %v", err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}

	t, err := GetTreatmentByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to read back treatment %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(201, t)
}

func handleTreatmentUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	if err := UpdateTreatment(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("failed to update treatment %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

func handleTreatmentDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := DeleteTreatment(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("failed to delete treatment %d: %v", id, err)
		c.JSON(500, gin.H{"error": "db error"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}
