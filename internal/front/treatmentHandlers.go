package front

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func fetchTreatments(c *gin.Context, injuryID int64) ([]Treatment, error) {
	if injuryID > 0 {
		return downstream.TreatmentsByInjury(c.Request.Context(), injuryID)
	}
	return downstream.Treatments(c.Request.Context())
}

func handleTreatmentList(c *gin.Context) {
	term := c.Query("search")
	confirmID, _ := strconv.ParseInt(c.Query("confirm"), 10, 64)
	injuryIDParam, _ := strconv.ParseInt(c.Query("injuryId"), 10, 64)

	vm := TreatmentListVM{ListVM: ListVM{
		Title:      "Treatments",
		Active:     "treatments",
		SearchTerm: term,
		ConfirmID:  confirmID,
		InjuryID:   injuryIDParam,
	}}

	col := NewCollection(treatmentID)
	col.Loading()
	items, err := fetchTreatments(c, injuryIDParam)
	if err != nil {
		col.Fail()
		log.Printf("failed to load treatments: %v", err)
		vm.Error = bannerMessage(err, "load treatments")
		c.HTML(http.StatusOK, "treatment_list.html", vm)
		return
	}
	col.Load(items)

	vm.Treatments = FilterTreatments(col.Items(), term)
	c.HTML(http.StatusOK, "treatment_list.html", vm)
}

func handleTreatmentDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/treatments")
		return
	}
	term := c.PostForm("search")
	injuryIDParam, _ := strconv.ParseInt(c.PostForm("injuryId"), 10, 64)

	vm := TreatmentListVM{ListVM: ListVM{
		Title:      "Treatments",
		Active:     "treatments",
		SearchTerm: term,
		InjuryID:   injuryIDParam,
	}}

	col := NewCollection(treatmentID)
	col.Loading()
	items, err := fetchTreatments(c, injuryIDParam)
	if err != nil {
		col.Fail()
		log.Printf("failed to load treatments: %v", err)
		vm.Error = bannerMessage(err, "load treatments")
		c.HTML(http.StatusOK, "treatment_list.html", vm)
		return
	}
	col.Load(items)

	if err := downstream.DeleteTreatment(c.Request.Context(), id); err != nil {
		log.Printf("failed to delete treatment %d: %v", id, err)
		vm.Error = bannerMessage(err, "delete treatment")
	} else {
		col.RemoveByID(id)
	}

	vm.Treatments = FilterTreatments(col.Items(), term)
	c.HTML(http.StatusOK, "treatment_list.html", vm)
}

func handleTreatmentDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "treatment not found"})
		return
	}

	vm := TreatmentDetailVM{Title: "Treatment Details", Active: "treatments"}

	treatment, err := downstream.TreatmentByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("failed to load treatment %d: %v", id, err)
		vm.Error = bannerMessage(err, "load treatment")
		c.HTML(http.StatusOK, "treatment_detail.html", vm)
		return
	}
	vm.Treatment = treatment

	c.HTML(http.StatusOK, "treatment_detail.html", vm)
}

func treatmentFormVM(editMode bool, injuryIDParam int64) TreatmentFormVM {
	vm := TreatmentFormVM{
		FormVM: FormVM{
			Title:     "Add New Treatment",
			Active:    "treatments",
			EditMode:  editMode,
			CancelURL: "/treatments",
		},
		TypeOptions:   TreatmentTypeOptions,
		ResultOptions: TreatmentResultOptions,
	}
	if editMode {
		vm.Title = "Edit Treatment"
	}
	if injuryIDParam > 0 {
		vm.ParentLocked = true
		vm.CancelURL = fmt.Sprintf("/injuries/%d", injuryIDParam)
		vm.Treatment.InjuryID = injuryIDParam
	}
	return vm
}

func handleTreatmentForm(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""
	injuryIDParam, _ := strconv.ParseInt(c.Query("injuryId"), 10, 64)

	vm := treatmentFormVM(editMode, injuryIDParam)

	injuries, err := downstream.Injuries(c.Request.Context())
	if err != nil {
		log.Printf("failed to load injuries for treatment form: %v", err)
		vm.Error = "Failed to load injuries. Please try again later."
		c.HTML(http.StatusOK, "treatment_form.html", vm)
		return
	}
	vm.Injuries = injuries

	if editMode {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "treatment not found"})
			return
		}
		treatment, err := downstream.TreatmentByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("failed to load treatment %d: %v", id, err)
			vm.Error = "Failed to load treatment data. Please try again later."
		} else {
			vm.Treatment = treatment
		}
	}

	c.HTML(http.StatusOK, "treatment_form.html", vm)
}

func handleTreatmentSubmit(c *gin.Context) {
	idStr := c.Param("id")
	editMode := idStr != ""
	injuryIDParam, _ := strconv.ParseInt(c.Query("injuryId"), 10, 64)

	var r TreatmentFormRequest
	if err := c.ShouldBind(&r); err != nil {
		log.Printf("Failed to bind request: %v", err)
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": "bad data"})
		return
	}

	// locked selector, the URL context decides the parent
	if injuryIDParam > 0 {
		r.InjuryID = strconv.FormatInt(injuryIDParam, 10)
	}

	vm := treatmentFormVM(editMode, injuryIDParam)

	rerender := func() {
		if injuries, err := downstream.Injuries(c.Request.Context()); err == nil {
			vm.Injuries = injuries
		}
		c.HTML(http.StatusOK, "treatment_form.html", vm)
	}

	if err := r.validate(); err != nil {
		vm.Error = err.Error()
		vm.Treatment = r.toTreatment()
		rerender()
		return
	}

	treatment := r.toTreatment()

	if editMode {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "treatment not found"})
			return
		}
		treatment.TreatmentID = id
		if err := downstream.UpdateTreatment(c.Request.Context(), id, treatment); err != nil {
			log.Printf("failed to update treatment %d: %v", id, err)
			vm.Error = bannerMessage(err, "update treatment")
			vm.Treatment = treatment
			rerender()
			return
		}
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/treatments/%d", id))
		return
	}

	created, err := downstream.CreateTreatment(c.Request.Context(), treatment)
	if err != nil {
		log.Printf("failed to add treatment: %v", err)
		vm.Error = bannerMessage(err, "add treatment")
		vm.Treatment = treatment
		rerender()
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/treatments/%d", created.TreatmentID))
}
