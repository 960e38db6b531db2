package front

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// fetchInjuries picks the parent scoped endpoint when the list was entered
// through an athlete, otherwise list-all. Changing the athlete filter changes
// which endpoint is called, it is not a client side filter.
func fetchInjuries(c *gin.Context, athleteID int64) ([]Injury, error) {
	if athleteID > 0 {
		return downstream.InjuriesByAthlete(c.Request.Context(), athleteID)
	}
	return downstream.Injuries(c.Request.Context())
}

func handleInjuryList(c *gin.Context) {
	term := c.Query("search")
	confirmID, _ := strconv.ParseInt(c.Query("confirm"), 10, 64)
	athleteIDParam, _ := strconv.ParseInt(c.Query("athleteId"), 10, 64)

	vm := InjuryListVM{ListVM: ListVM{
		Title:      "Injuries",
		Active:     "injuries",
		SearchTerm: term,
		ConfirmID:  confirmID,
		AthleteID:  athleteIDParam,
	}}

	col := NewCollection(injuryID)
	col.Loading()
	items, err := fetchInjuries(c, athleteIDParam)
	if err != nil {
		col.Fail()
		log.Printf("failed to load injuries: %v", err)
		vm.Error = bannerMessage(err, "load injuries")
		c.HTML(http.StatusOK, "injury_list.html", vm)
		return
	}
	col.Load(items)

	vm.Injuries = FilterInjuries(col.Items(), term)
	c.HTML(http.StatusOK, "injury_list.html", vm)
}

func handleInjuryDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/injuries")
		return
	}
	term := c.PostForm("search")
	athleteIDParam, _ := strconv.ParseInt(c.PostForm("athleteId"), 10, 64)

	vm := InjuryListVM{ListVM: ListVM{
		Title:      "Injuries",
		Active:     "injuries",
		SearchTerm: term,
		AthleteID:  athleteIDParam,
	}}

	col := NewCollection(injuryID)
	col.Loading()
	items, err := fetchInjuries(c, athleteIDParam)
	if err != nil {
		col.Fail()
		log.Printf("failed to load injuries: %v", err)
		vm.Error = bannerMessage(err, "load injuries")
		c.HTML(http.StatusOK, "injury_list.html", vm)
		return
	}
	col.Load(items)

	if err := downstream.DeleteInjury(c.Request.Context(), id); err != nil {
		log.Printf("failed to delete injury %d: %v", id, err)
		vm.Error = bannerMessage(err, "delete injury")
	} else {
		col.RemoveByID(id)
	}

	vm.Injuries = FilterInjuries(col.Items(), term)
	c.HTML(http.StatusOK, "injury_list.html", vm)
}

func handleInjuryDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "injury not found"})
		return
	}

	vm := InjuryDetailVM{Title: "Injury Details", Active: "injuries"}

	injury, err := downstream.InjuryByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to load injury %d: %v", id, err)
		vm.Error = bannerMessage(err, "load injury")
		c.HTML(http.StatusOK, "injury_detail.html", vm)
		return
	}
	vm.Injury = injury

	// treatments are a separate fetch, a failure degrades to an empty
	// section instead of failing the injury view
	treatments, err := downstream.TreatmentsByInjury(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to load treatments for injury %d: %v", id, err)
		treatments = nil
	}
	vm.Treatments = treatments

	c.HTML(http.StatusOK, "injury_detail.html", vm)
}

func injuryFormVM(editMode bool, athleteIDParam int64) InjuryFormVM {
	vm := InjuryFormVM{
		FormVM: FormVM{
			Title:     "Add New Injury",
			Active:    "injuries",
			EditMode:  editMode,
			CancelURL: "/injuries",
		},
		TypeOptions:     InjuryTypeOptions,
		BodyPartOptions: BodyPartOptions,
		SeverityOptions: InjurySeverityOptions,
		StatusOptions:   InjuryStatusOptions,
	}
	if editMode {
		vm.Title = "Edit Injury"
	}
	if athleteIDParam > 0 {
		// arrived through an athlete: lock the selector and cancel back
		// to that athlete rather than the generic list
		vm.ParentLocked = true
		vm.CancelURL = fmt.Sprintf("/athletes/%d", athleteIDParam)
		vm.Injury.AthleteID = athleteIDParam
	}
	return vm
}

func handleInjuryForm(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""
	athleteIDParam, _ := strconv.ParseInt(c.Query("athleteId"), 10, 64)

	vm := injuryFormVM(editMode, athleteIDParam)

	athletes, err := downstream.Athletes(c.Request.Context())
	if err != nil {
		log.Printf("failed to load athletes for injury form: %v", err)
		vm.Error = "Failed to load athletes. Please try again later."
		c.HTML(http.StatusOK, "injury_form.html", vm)
		return
	}
	vm.Athletes = athletes

	if editMode {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "injury not found"})
			return
		}
		injury, err := downstream.InjuryByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("failed to load injury %d: %v", id, err)
			vm.Error = "Failed to load injury data. Please try again later."
		} else {
			vm.Injury = injury
		}
	}

	c.HTML(http.StatusOK, "injury_form.html", vm)
}

func handleInjurySubmit(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""
	athleteIDParam, _ := strconv.ParseInt(c.Query("athleteId"), 10, 64)

	var r InjuryFormRequest
	if err := c.ShouldBind(&r); err != nil {
		log.Printf("Failed to bind request: %v", err)
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "bad data"})
		return
	}

	// parent context from the URL wins over whatever the form posted,
	// the selector was locked for a reason
	if athleteIDParam > 0 {
		r.AthleteID = strconv.FormatInt(athleteIDParam, 10)
	}

	vm := injuryFormVM(editMode, athleteIDParam)

	// repopulates the athlete selector before showing the form again,
	// best effort only
	rerender := func() {
		if athletes, err := downstream.Athletes(c.Request.Context()); err == nil {
			vm.Athletes = athletes
		}
		c.HTML(http.StatusOK, "injury_form.html", vm)
	}

	if err := r.validate(); err != nil {
		vm.Error = err.Error()
		vm.Injury = r.toInjury()
		rerender()
		return
	}

	injury := r.toInjury()

	if editMode {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "injury not found"})
			return
		}
		injury.InjuryID = id
		if err := downstream.UpdateInjury(c.Request.Context(), id, injury); err != nil {
			log.Printf("failed to update injury %d: %v", id, err)
			vm.Error = bannerMessage(err, "update injury")
			vm.Injury = injury
			rerender()
			return
		}
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/injuries/%d", id))
		return
	}

	created, err := downstream.CreateInjury(c.Request.Context(), injury)
	if err != nil {
		log.Printf("failed to add injury: %v", err)
		vm.Error = bannerMessage(err, "add injury")
		vm.Injury = injury
		rerender()
		return
	}

	// straight to the new injury so it can be inspected right away
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/injuries/%d", created.InjuryID))
}
