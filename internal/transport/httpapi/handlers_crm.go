package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"agentcrm/internal/domain/crm"
)

func (s *Server) listCustomers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().Customers)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, ok := s.store.Snapshot().CustomerByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "customer not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

type createCustomerRequest struct {
	CompanyName      string   `json:"companyName"`
	ContactFirstName string   `json:"contactFirstName"`
	ContactLastName  string   `json:"contactLastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Website          string   `json:"website"`
	Address          string   `json:"address"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.CompanyName == "" {
		writeError(w, r, http.StatusBadRequest, "companyName is required", nil)
		return
	}

	customer := crm.Customer{
		ID:               s.newID("cust"),
		CompanyName:      req.CompanyName,
		ContactFirstName: req.ContactFirstName,
		ContactLastName:  req.ContactLastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Website:          req.Website,
		Address:          req.Address,
		Category:         req.Category,
		Status:           crm.CustomerStatusLead,
		Tags:             req.Tags,
		CreatedAt:        s.now(),
	}
	s.store.AddCustomer(customer)
	writeJSON(w, http.StatusCreated, customer)
}

func (s *Server) listDeals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().Deals)
}

type dealRequest struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Stage      string  `json:"stage"`
	Priority   string  `json:"priority"`
	PackageFit string  `json:"packageFit"`
	NextAction string  `json:"nextAction"`
}

func (s *Server) createDeal(w http.ResponseWriter, r *http.Request) {
	var req dealRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.CustomerID == "" {
		writeError(w, r, http.StatusBadRequest, "name and customerId are required", nil)
		return
	}
	if _, ok := s.store.Snapshot().CustomerByID(req.CustomerID); !ok {
		writeError(w, r, http.StatusBadRequest, "customer not found", nil)
		return
	}

	stage := crm.DealStage(req.Stage)
	if stage == "" {
		stage = crm.DealStageLead
	}
	priority := crm.Priority(req.Priority)
	if priority == "" {
		priority = crm.PriorityMedium
	}
	pkg := crm.PackageTier(req.PackageFit)
	if pkg == "" {
		pkg = crm.PackageAny
	}

	deal := crm.Deal{
		ID:         s.newID("deal"),
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Value:      req.Value,
		Stage:      stage,
		Priority:   priority,
		PackageFit: pkg,
		NextAction: req.NextAction,
	}
	s.store.AddDeal(deal)
	writeJSON(w, http.StatusCreated, deal)
}

type updateDealRequest struct {
	Stage      *string  `json:"stage"`
	Value      *float64 `json:"value"`
	NextAction *string  `json:"nextAction"`
	Priority   *string  `json:"priority"`
}

func (s *Server) updateDeal(w http.ResponseWriter, r *http.Request) {
	var req updateDealRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	touch := s.now()
	ok := s.store.UpdateDeal(id, func(d *crm.Deal) {
		if req.Stage != nil {
			d.Stage = crm.DealStage(*req.Stage)
		}
		if req.Value != nil {
			d.Value = *req.Value
		}
		if req.NextAction != nil {
			d.NextAction = *req.NextAction
		}
		if req.Priority != nil {
			d.Priority = crm.Priority(*req.Priority)
		}
		d.LastTouchDate = &touch
	})
	if !ok {
		writeError(w, r, http.StatusNotFound, "deal not found", nil)
		return
	}

	deal, _ := s.store.Snapshot().DealByID(id)
	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) analyzeDeal(w http.ResponseWriter, r *http.Request) {
	deal, ok := s.store.Snapshot().DealByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "deal not found", nil)
		return
	}

	suggestion, err := s.agent.AnalyzeDeal(r.Context(), deal)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "analysis failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

func (s *Server) draftDealEmail(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	deal, ok := snap.DealByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "deal not found", nil)
		return
	}

	contactName := ""
	companyName := ""
	var customerContext *crm.Customer
	if customer, ok := snap.CustomerByID(deal.CustomerID); ok {
		companyName = customer.CompanyName
		contactName = customer.ContactFirstName
		c := customer
		customerContext = &c
	}

	body, err := s.agent.DraftOutreach(r.Context(), deal, contactName, companyName, customerContext)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "draft failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"body": body})
}

func (s *Server) listTasks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().Tasks)
}

type taskRequest struct {
	DealID     string    `json:"dealId"`
	CustomerID string    `json:"customerId"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"dueDate"`
	Priority   string    `json:"priority"`
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Title == "" {
		writeError(w, r, http.StatusBadRequest, "title is required", nil)
		return
	}

	priority := crm.Priority(req.Priority)
	if priority == "" {
		priority = crm.PriorityMedium
	}
	task := crm.Task{
		ID:         s.newID("task"),
		DealID:     req.DealID,
		CustomerID: req.CustomerID,
		Title:      req.Title,
		DueDate:    req.DueDate,
		Priority:   priority,
		Status:     "PENDING",
	}
	s.store.AddTask(task)
	writeJSON(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Status *string `json:"status"`
	Title  *string `json:"title"`
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ok := s.store.UpdateTask(chi.URLParam(r, "id"), func(t *crm.Task) {
		if req.Status != nil {
			t.Status = *req.Status
		}
		if req.Title != nil {
			t.Title = *req.Title
		}
	})
	if !ok {
		writeError(w, r, http.StatusNotFound, "task not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (s *Server) listTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot().EmailTemplates)
}

type templateRequest struct {
	Name     string   `json:"name"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required", nil)
		return
	}

	tpl := crm.EmailTemplate{
		ID:       s.newID("tpl"),
		Name:     req.Name,
		Subject:  req.Subject,
		Body:     req.Body,
		Category: req.Category,
		Tags:     req.Tags,
	}
	s.store.AddEmailTemplate(tpl)
	writeJSON(w, http.StatusCreated, tpl)
}

func (s *Server) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ok := s.store.UpdateEmailTemplate(chi.URLParam(r, "id"), func(t *crm.EmailTemplate) {
		if req.Name != "" {
			t.Name = req.Name
		}
		if req.Subject != "" {
			t.Subject = req.Subject
		}
		if req.Body != "" {
			t.Body = req.Body
		}
		if req.Category != "" {
			t.Category = req.Category
		}
		if req.Tags != nil {
			t.Tags = req.Tags
		}
	})
	if !ok {
		writeError(w, r, http.StatusNotFound, "template not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (s *Server) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteEmailTemplate(chi.URLParam(r, "id")) {
		writeError(w, r, http.StatusNotFound, "template not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	activities := s.store.Snapshot().Activities
	if customerID := r.URL.Query().Get("customer"); customerID != "" {
		filtered := make([]crm.Activity, 0, len(activities))
		for _, a := range activities {
			if a.CustomerID == customerID {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}
	writeJSON(w, http.StatusOK, activities)
}
