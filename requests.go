package main

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"github.com/netra-cyber/netra-portal/aggregate"
	"github.com/netra-cyber/netra-portal/identity"
	"github.com/netra-cyber/netra-portal/listing"
	"github.com/netra-cyber/netra-portal/models"
	"github.com/netra-cyber/netra-portal/render"
)

func getRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params, s session) {
	q := r.URL.Query()
	criteria := listing.RequestCriteria{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Sort:   q.Get("sort"),
	}
	if criteria.Sort == "" {
		criteria.Sort = listing.DefaultSort
	}

	var (
		reqs  []models.Request
		cases []models.Case
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		reqs, err = api.Requests(ctx, s.token)
		return err
	})
	g.Go(func() (err error) {
		cases, err = api.Cases(ctx, s.token)
		return err
	})

	page := render.RequestsPage{
		Chrome:   chrome(w, r, s, "Requests", "requests"),
		Criteria: criteria,
		Statuses: render.Options(criteria.Status,
			listing.AllStatuses, "All Statuses",
			models.RequestPending, "Pending",
			models.RequestApproved, "Approved",
			models.RequestDispatched, "Dispatched",
			models.RequestRejected, "Rejected"),
		Sorts: render.Options(criteria.Sort,
			listing.DateDesc, "Newest First",
			listing.DateAsc, "Oldest First",
			listing.IDAsc, "ID (Low-High)",
			listing.IDDesc, "ID (High-Low)"),
		CanReview: s.id.Can(identity.ReviewRequest),
	}
	if err := g.Wait(); err != nil {
		if expired(w, r, err) {
			return
		}
		page.Alert(render.AlertDanger, err.Error())
	}

	types := []string{listing.AllStatuses, "All Types"}
	for _, t := range listing.RequestTypes(reqs) {
		types = append(types, t, t)
	}
	page.Types = render.Options(criteria.Type, types...)

	firs := aggregate.FIRIndex(cases)
	page.Rows = aggregate.BuildRequestRows(listing.Requests(reqs, firs, criteria), firs, now(), page.CanReview)

	if id, err := strconv.Atoi(q.Get("draft")); err == nil {
		page.Draft = draftFor(id, reqs, q.Get("to"), q.Get("template"))
	}

	renderPage(w, http.StatusOK, render.PageRequests, page)
}

// draftFor composes the requisition mail for request id, or returns nil when it is not listed.
func draftFor(id int, reqs []models.Request, to, template string) *render.Draft {
	for _, req := range reqs {
		if req.ID != id {
			continue
		}

		office, ok := aggregate.NodalByEmail(to)
		if !ok {
			office = aggregate.DetectNodal(req.Reason)
		}
		if template == "" {
			template = aggregate.TemplateStandard
		}
		mail := aggregate.Draft(req, office, template)

		offices := make([]string, 0, 2*len(aggregate.NodalOffices))
		for _, o := range aggregate.NodalOffices {
			offices = append(offices, o.Email, o.Name+" ("+o.Email+")")
		}
		return &render.Draft{
			RequestID: id,
			Mail:      mail,
			Mailto:    mail.Mailto(),
			Offices:   render.Options(office.Email, offices...),
			Templates: render.Options(template,
				aggregate.TemplateStandard, "Standard Requisition",
				aggregate.TemplateUrgent, "Urgent / Life Threatening",
				aggregate.TemplateReminder, "Reminder"),
		}
	}
	return nil
}

// reviewAction runs one state change on a request and returns to the list.
func reviewAction(success string, act func(r *http.Request, s session, id int) error) func(http.ResponseWriter, *http.Request, httprouter.Params, session) {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
		id, ok := idParam(ps, "id")
		if !ok {
			http.NotFound(w, r)
			return
		}
		if err := act(r, s, id); err != nil {
			if expired(w, r, err) {
				return
			}
			redirectWith(w, r, "/requests", render.AlertDanger, err.Error())
			return
		}
		redirectWith(w, r, "/requests", render.AlertSuccess, success)
	}
}

var postApproveRequest = reviewAction("Request approved.", func(r *http.Request, s session, id int) error {
	_, err := api.ApproveRequest(r.Context(), s.token, id)
	return err
})

var postRejectRequest = reviewAction("Request rejected.", func(r *http.Request, s session, id int) error {
	_, err := api.RejectRequest(r.Context(), s.token, id, r.PostFormValue("reason"))
	return err
})

var postDispatchRequest = reviewAction("Request marked as DISPATCHED successfully.", func(r *http.Request, s session, id int) error {
	_, err := api.DispatchRequest(r.Context(), s.token, id)
	return err
})

var postRequestUpload = reviewAction("Signed letter uploaded.", func(r *http.Request, s session, id int) error {
	file, header, err := r.FormFile("file")
	if err != nil {
		return &formError{"Please choose a file to upload."}
	}
	defer file.Close()

	_, err = api.UploadRequestFile(r.Context(), s.token, id, header.Filename, file)
	return err
})

// formError is an input problem caught before anything reaches the backend.
type formError struct {
	msg string
}

func (e *formError) Error() string {
	return e.msg
}

func getRequestLetter(w http.ResponseWriter, r *http.Request, ps httprouter.Params, s session) {
	id, ok := idParam(ps, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	d, err := api.DownloadRequestLetter(r.Context(), s.token, id)
	if err != nil {
		renderError(w, r, s, err)
		return
	}
	stream(w, d, "inline")
}
