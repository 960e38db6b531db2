package front

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":  "Athlete Injury Tracker",
		"Active": "home",
	})
}

func handleAthleteList(c *gin.Context) {
	term := c.Query("search")
	confirmID, _ := strconv.ParseInt(c.Query("confirm"), 10, 64)

	vm := AthleteListVM{ListVM: ListVM{
		Title:      "Athletes",
		Active:     "athletes",
		SearchTerm: term,
		ConfirmID:  confirmID,
	}}

	col := NewCollection(athleteID)
	col.Loading()
	items, err := downstream.Athletes(c.Request.Context())
	if err != nil {
		col.Fail()
		log.Printf("failed to load athletes: %v", err)
		vm.Error = bannerMessage(err, "load athletes")
		c.HTML(http.StatusOK, "athlete_list.html", vm)
		return
	}
	col.Load(items)

	vm.Athletes = FilterAthletes(col.Items(), term)
	c.HTML(http.StatusOK, "athlete_list.html", vm)
}

// handleAthleteDelete confirms a pending row delete. The list stays in memory
// across the call: on success the row is removed from the fetched collection,
// on failure the collection is rendered untouched with a banner.
func handleAthleteDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/athletes")
		return
	}
	term := c.PostForm("search")

	vm := AthleteListVM{ListVM: ListVM{
		Title:      "Athletes",
		Active:     "athletes",
		SearchTerm: term,
	}}

	col := NewCollection(athleteID)
	col.Loading()
	items, err := downstream.Athletes(c.Request.Context())
	if err != nil {
		col.Fail()
		log.Printf("failed to load athletes: %v", err)
		vm.Error = bannerMessage(err, "load athletes")
		c.HTML(http.StatusOK, "athlete_list.html", vm)
		return
	}
	col.Load(items)

	if err := downstream.DeleteAthlete(c.Request.Context(), id); err != nil {
		log.Printf("failed to delete athlete %d: %v", id, err)
		vm.Error = bannerMessage(err, "delete athlete")
	} else {
		col.RemoveByID(id)
	}

	vm.Athletes = FilterAthletes(col.Items(), term)
	c.HTML(http.StatusOK, "athlete_list.html", vm)
}

func handleAthleteDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "athlete not found"})
		return
	}

	vm := AthleteDetailVM{Title: "Athlete Details", Active: "athletes"}

	athlete, err := downstream.AthleteByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to load athlete %d: %v", id, err)
		vm.Error = bannerMessage(err, "load athlete")
		c.HTML(http.StatusOK, "athlete_detail.html", vm)
		return
	}
	vm.Athlete = athlete

	// related injuries are a separate fetch, a failure here must not take
	// down the athlete view
	injuries, err := downstream.InjuriesByAthlete(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to load injuries for athlete %d: %v", id, err)
		injuries = nil
	}
	vm.Injuries = injuries

	c.HTML(http.StatusOK, "athlete_detail.html", vm)
}

func handleAthleteForm(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""

	vm := AthleteFormVM{
		FormVM: FormVM{
			Title:     "Add New Athlete",
			Active:    "athletes",
			EditMode:  editMode,
			CancelURL: "/athletes",
		},
		StatusOptions: AthleteStatusOptions,
	}

	if editMode {
		vm.Title = "Edit Athlete"
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "athlete not found"})
			return
		}
		athlete, err := downstream.AthleteByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("failed to load athlete %d: %v", id, err)
			vm.Error = "Failed to load athlete data. Please try again later."
		} else {
			vm.Athlete = athlete
		}
	}

	c.HTML(http.StatusOK, "athlete_form.html", vm)
}

func handleAthleteSubmit(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""

	var r AthleteFormRequest
	if err := c.ShouldBind(&r); err != nil {
		log.Printf("Failed to bind request: %v", err)
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "bad data"})
		return
	}

	vm := AthleteFormVM{
		FormVM: FormVM{
			Title:     "Add New Athlete",
			Active:    "athletes",
			EditMode:  editMode,
			CancelURL: "/athletes",
		},
		StatusOptions: AthleteStatusOptions,
	}
	if editMode {
		vm.Title = "Edit Athlete"
	}

	// validation failures never reach the records service
	if err := r.validate(); err != nil {
		vm.Error = err.Error()
		vm.Athlete = r.toAthlete()
		c.HTML(http.StatusOK, "athlete_form.html", vm)
		return
	}

	athlete := r.toAthlete()

	if editMode {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "athlete not found"})
			return
		}
		athlete.AthleteID = id
		if err := downstream.UpdateAthlete(c.Request.Context(), id, athlete); err != nil {
			log.Printf("failed to update athlete %d: %v", id, err)
			vm.Error = bannerMessage(err, "update athlete")
			vm.Athlete = athlete
			c.HTML(http.StatusOK, "athlete_form.html", vm)
			return
		}
	} else {
		if _, err := downstream.CreateAthlete(c.Request.Context(), athlete); err != nil {
			log.Printf("failed to add athlete: %v", err)
			vm.Error = bannerMessage(err, "add athlete")
			vm.Athlete = athlete
			c.HTML(http.StatusOK, "athlete_form.html", vm)
			return
		}
	}

	// athletes go back to the list, unlike injuries and treatments
	c.Redirect(http.StatusSeeOther, "/athletes")
}
